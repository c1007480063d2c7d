package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdpdf"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdpdf.Input) (*mdpdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdpdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes an mdpdf.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *mdpdf.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// newConverterPool creates the production pool.
func newConverterPool(size int, opts ...mdpdf.Option) (Pool, error) {
	pool, err := mdpdf.NewConverterPool(size, opts...)
	if err != nil {
		return nil, err
	}
	return &poolAdapter{pool: pool}, nil
}

// Acquire returns nil once the pool is closed.
func (a *poolAdapter) Acquire() CLIConverter {
	conv := a.pool.Acquire()
	if conv == nil {
		return nil
	}
	return conv
}

// Release panics on converters the pool did not hand out (programmer error).
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*mdpdf.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
