package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-mdpdf"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and converter pool creation.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(key string) string
	Environ func() []string
	NewPool func(size int, opts ...mdpdf.Option) (Pool, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPool: newConverterPool,
	}
}
