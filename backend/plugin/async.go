// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package plugin

import (
	"bytes"
	"os/exec"
	"sync"

	"github.com/freshedit/fresh/backend/log"
)

// Task is a resumed script continuation or an editor action a handler
// requested. The host serializes all of these onto the main loop
// instead of running them the instant a handler produces them, so a
// single turn's events still apply atomically.
type Task func()

// Queue is the main loop's FIFO of pending Tasks. Handlers enqueue
// editor actions and resumed continuations here rather than applying
// them directly; Drain runs them all between turns.
type Queue struct {
	mu      sync.Mutex
	pending []Task
}

// Enqueue appends t to the queue. Safe to call from a worker
// goroutine (e.g. a SpawnProcess completion).
func (q *Queue) Enqueue(t Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, t)
}

// Drain runs every currently queued task, in FIFO order, then returns.
// Tasks that enqueue further tasks while running are picked up by the
// next Drain call, not this one, so one turn can't starve the loop.
func (q *Queue) Drain() {
	q.mu.Lock()
	tasks := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, t := range tasks {
		t()
	}
}

// ProcessResult is spawn_process's resolved value: the equivalent of
// awaiting a Promise<{stdout, stderr, exit_code}> across the
// script/host boundary.
type ProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// SpawnProcess runs cmd/args in cwd on its own goroutine and returns a
// channel the caller receives the result from once it completes --
// the only suspension point besides file I/O a plugin may await on.
func SpawnProcess(cmd string, args []string, cwd string) <-chan ProcessResult {
	out := make(chan ProcessResult, 1)
	go func() {
		c := exec.Command(cmd, args...)
		c.Dir = cwd
		var stdout, stderr bytes.Buffer
		c.Stdout = &stdout
		c.Stderr = &stderr

		err := c.Run()
		exitCode := 0
		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else {
				log.Error("spawn_process %s: %s", cmd, err)
			}
		}
		out <- ProcessResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode, Err: err}
	}()
	return out
}
