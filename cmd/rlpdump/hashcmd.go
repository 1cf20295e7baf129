// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/crypto"
	"github.com/learn-bcos/go-bcos/internal/flags"
	"github.com/learn-bcos/go-bcos/log"
	"github.com/learn-bcos/go-bcos/rlp"
	"github.com/urfave/cli/v2"
)

var (
	keccakCommand = &cli.Command{
		Action:    keccakAction,
		Name:      "keccak",
		Usage:     "Print the Keccak-256 hash of RLP input",
		ArgsUsage: "[<file> ...]",
		Description: `The keccak command validates each input as RLP and prints the hash
of its encoding, followed by the input name.`,
	}
	addrCommand = &cli.Command{
		Action: addrAction,
		Name:   "addr",
		Usage:  "Compute the address of a contract created by sender",
		Flags:  []cli.Flag{senderFlag, nonceFlag},
		Description: `The addr command prints keccak(rlp([sender, nonce]))[12:], the
address of the contract created by the sender's transaction with that nonce.`,
	}

	senderFlag = &cli.StringFlag{
		Name:     "sender",
		Usage:    "Creator account address (hex)",
		Required: true,
		Category: flags.MiscCategory,
	}
	nonceFlag = &flags.Uint256Flag{
		Name:     "nonce",
		Usage:    "Creator account nonce",
		Value:    new(uint256.Int),
		Category: flags.MiscCategory,
	}
)

func keccakAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(ctx)
	if err != nil {
		return err
	}
	if err := loadInputs(inputs, &cfg); err != nil {
		return err
	}
	for _, in := range inputs {
		it, err := rlp.ParseItem(in.data, cfg.Decode.Strict)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		if it.IsNull() {
			return fmt.Errorf("%s: %w", in.name, errEmptyInput)
		}
		h := crypto.Keccak256Hash(it.ActualData())
		fmt.Fprintf(ctx.App.Writer, "%s  %s\n", h.Hex(), in.name)
	}
	return nil
}

func addrAction(ctx *cli.Context) error {
	sender, err := common.AddressFromHex(ctx.String(senderFlag.Name), common.AlignExact)
	if err != nil {
		return fmt.Errorf("invalid sender %q: %w", ctx.String(senderFlag.Name), err)
	}
	nonce := flags.GlobalUint256(ctx, nonceFlag.Name)
	if nonce == nil {
		return errors.New("missing nonce")
	}
	addr := crypto.CreateAddress(sender, nonce)
	log.Debug("Derived contract address", "sender", sender, "nonce", nonce, "address", addr)
	fmt.Fprintln(ctx.App.Writer, addr.Hex())
	return nil
}
