// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package workpool runs tasks on a bounded number of goroutines.
package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs submitted tasks with at most a fixed number of them in flight.
// The first task error cancels the pool: tasks that have not started yet are
// skipped and Wait reports that error.
//
// Pool 使用固定数量的 goroutine 执行任务，第一个任务出错后，尚未开始的任务将被跳过。
type Pool struct {
	group *errgroup.Group
	ctx   context.Context
}

// New creates a pool running up to workers tasks at once. A non-positive
// count uses one worker per CPU.
func New(workers int) *Pool {
	p, _ := WithContext(context.Background(), workers)
	return p
}

// WithContext creates a pool bound to ctx. The returned context is cancelled
// when ctx is, or when a task fails.
func WithContext(ctx context.Context, workers int) (*Pool, context.Context) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	return &Pool{group: group, ctx: ctx}, ctx
}

// Go submits fn. It blocks while all workers are busy.
// Go 提交任务，所有 worker 忙碌时阻塞。
func (p *Pool) Go(fn func() error) {
	p.group.Go(func() error {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		return fn()
	})
}

// Wait blocks until all submitted tasks are done and returns the first error.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
