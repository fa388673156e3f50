package main

import (
	"fmt"
	"strings"

	"github.com/9triver/lrucore/actor/cache"
	lru "github.com/9triver/lrucore/cache"
	"github.com/9triver/lrucore/utils/errors"
)

const usage = `commands:
  set <key> <value>   insert or replace key
  get <key>           read key and mark it most recently used
  peek <key>          read key without reordering
  del <key>           remove key
  lru                 show least recently used key
  keys                list keys, most recently used first
  stats               show counters
  quit                exit`

var errQuit = errors.New("quit")

// execute runs one console line against the cache actor and returns the
// text to print.
func execute(client *cache.Client[string, string], line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch {
	case cmd == "set" && len(args) >= 2:
		prev, replaced, err := client.Insert(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return "", err
		}
		if replaced {
			return fmt.Sprintf("OK (was %q)", prev), nil
		}
		return "OK", nil
	case cmd == "get" && len(args) == 1:
		return lookup(client.Get(args[0]))
	case cmd == "peek" && len(args) == 1:
		return lookup(client.Peek(args[0]))
	case cmd == "del" && len(args) == 1:
		value, err := client.Remove(args[0])
		if lru.IsNotFound(err) {
			return "(nil)", nil
		} else if err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted %q", value), nil
	case cmd == "lru" && len(args) == 0:
		key, ok, err := client.PeekLRU()
		if err != nil {
			return "", err
		}
		if !ok {
			return "(empty)", nil
		}
		return key, nil
	case cmd == "keys" && len(args) == 0:
		keys, err := client.Keys()
		if err != nil {
			return "", err
		}
		return strings.Join(keys, " "), nil
	case cmd == "stats" && len(args) == 0:
		s, err := client.Stats()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("len=%d capacity=%d inserts=%d hits=%d misses=%d removes=%d evictions=%d",
			s.Len, s.Capacity, s.Inserts, s.Hits, s.Misses, s.Removes, s.Evictions), nil
	case cmd == "quit" || cmd == "exit":
		return "", errQuit
	default:
		return usage, nil
	}
}

func lookup(value string, err error) (string, error) {
	if lru.IsNotFound(err) {
		return "(nil)", nil
	} else if err != nil {
		return "", err
	}
	return value, nil
}
