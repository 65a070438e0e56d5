package config

import (
	"bufio"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"dstruct-instruction/datastruct/dict"
	"dstruct-instruction/datastruct/tree"
	"dstruct-instruction/lib/utils"
)

// TableProperties holds the tunables of the demo containers. The properties
// file uses one "key value" pair per line; '#' starts a comment line.
type TableProperties struct {
	TableSize      int    `cfg:"tablesize"`
	TraversalOrder string `cfg:"traversalorder"`
	Verbose        bool   `cfg:"verbose"`
}

var Properties *TableProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *TableProperties {
	return &TableProperties{
		TableSize:      dict.MaxTableSize,
		TraversalOrder: "inorder",
	}
}

// SetupTableProperties loads and validates the properties file, replacing
// Properties on success only.
func SetupTableProperties(fs afero.Fs, filename string) error {
	file, err := fs.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open properties file %s", filename)
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(file)
	p, err := parse(file)
	if err != nil {
		return err
	}
	if !utils.IsPrime(p.TableSize) {
		return errors.Errorf("tablesize %d is not prime", p.TableSize)
	}
	if _, ok := tree.OrderOf(p.TraversalOrder); !ok {
		return errors.Errorf("unknown traversalorder %q", p.TraversalOrder)
	}
	Properties = p
	return nil
}

func parse(reader io.Reader) (*TableProperties, error) {
	res := defaultProperties()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read properties")
	}
	fillProperties(res, m)
	return res, nil
}

func fillProperties(p *TableProperties, m map[string]string) {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err == nil {
				fieldVal.SetInt(intV)
			}
		case reflect.Bool:
			boolV := "yes" == val
			fieldVal.SetBool(boolV)
		}
	}
}
