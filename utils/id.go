package utils

import (
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

type IDGenerator interface {
	Next() string
	NextWithPrefix(prefix string) string
}

type StringIDGenerator struct {
	producer func() string
}

func (gen *StringIDGenerator) Next() string {
	return gen.producer()
}

func (gen *StringIDGenerator) NextWithPrefix(prefix string) string {
	return prefix + gen.Next()
}

var (
	longIDGen  IDGenerator = &StringIDGenerator{producer: uuid.NewString}
	shortIDGen IDGenerator = &StringIDGenerator{producer: func() string { return shortuuid.New() }}
)

// GenID returns a random UUID string.
func GenID() string {
	return longIDGen.Next()
}

// GenShortID returns a compact random id, used for actor names.
func GenShortID() string {
	return shortIDGen.Next()
}

func GenCacheID() string {
	return shortIDGen.NextWithPrefix("lru-")
}
