package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"dstruct-instruction/config"
	"dstruct-instruction/datastruct/dict"
	"dstruct-instruction/datastruct/tree"
	"dstruct-instruction/lib/logger"
)

func main() {
	if len(os.Args) > 1 {
		if err := config.SetupTableProperties(afero.NewOsFs(), os.Args[1]); err != nil {
			logger.Fatal(err)
		}
	}
	if config.Properties.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	order, _ := tree.OrderOf(config.Properties.TraversalOrder)
	for name, tm := range map[string]tree.TreeMap{
		"recursive": tree.NewRecursiveTree(),
		"iterative": tree.NewIterativeTree(),
	} {
		tm.Insert('b', 2)
		tm.Insert('a', 1)
		tm.Insert('d', 4)
		tm.Insert('c', 3)
		fmt.Printf("%s %s: %s\n", name, config.Properties.TraversalOrder, tree.Tokens(tm, order))
		logger.Debugf("%s preorder: %s", name, tree.Tokens(tm, tree.PreOrder))
		tm.Delete('b')
		fmt.Printf("%s inorder after delete('b'): %s\n", name, tree.Tokens(tm, tree.InOrder))
		tm.Dispose()
	}

	m, err := dict.NewChainedHashMapOfSize(config.Properties.TableSize)
	if err != nil {
		logger.Fatal(err)
	}
	m.Put("x", 1.0)
	m.Put("x", 2.0)
	for _, key := range []string{"abc", "acb", "bac"} {
		m.Put(key, 0.5)
	}
	if v, ok := m.Get("x"); ok {
		fmt.Printf("x = %.1f (%d entries in %d buckets)\n", v, m.Size(), config.Properties.TableSize)
	}
	m.Delete("acb")
	m.ForEach(func(key string, value float32) bool {
		logger.Debugf("entry %s = %f", key, value)
		return true
	})
	m.Clear()
	fmt.Printf("after clear: %d entries\n", m.Size())
}
