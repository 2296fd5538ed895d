// Package csi models control sequences introduced by CSI: private markers,
// numeric parameters with their separators, intermediates and a final byte.
package csi

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/vtwire/ansi"
	"github.com/hnimtadd/vtwire/utils"
)

// Command is one tokenized CSI sequence. Intermediates holds the collected
// bytes in arrival order, which puts private markers (0x3C to 0x3F) before
// any true intermediates (0x20 to 0x2F). ParamsSet marks the params that
// were followed by a colon separator instead of a semicolon, sub-parameter
// boundaries stay visible to consumers that way.
type Command struct {
	Intermediates []uint8
	Params        []uint16
	ParamsSet     *utils.StaticBitSet
	Final         uint8
}

func (c Command) String() string {
	return fmt.Sprintf("CSI %v %v %v", c.Intermediates, c.Params, c.Final)
}

// Encode writes the sequence back to w in wire form: ESC '[', private
// markers, parameters joined by their original separators, intermediates,
// then the final byte. The only errors are write errors from w.
func (c *Command) Encode(w io.Writer) error {
	buf := []uint8{ansi.C0.ESC, '['}
	for _, in := range c.Intermediates {
		if in >= 0x3C && in <= 0x3F {
			buf = append(buf, in)
		}
	}
	for i, param := range c.Params {
		if i > 0 {
			separator := uint8(';')
			if c.ParamsSet != nil && c.ParamsSet.IsSet(i-1) {
				separator = ':'
			}
			buf = append(buf, separator)
		}
		buf = strconv.AppendUint(buf, uint64(param), 10)
	}
	for _, in := range c.Intermediates {
		if in >= 0x20 && in <= 0x2F {
			buf = append(buf, in)
		}
	}
	buf = append(buf, c.Final)
	_, err := w.Write(buf)
	return err
}

// Hash returns a stable hash of the command for callers that aggregate
// commands in hash-keyed maps. The separator layout is part of the identity,
// "38;2" and "38:2" hash apart.
func (c *Command) Hash() uint64 {
	identity := struct {
		Intermediates []uint8
		Params        []uint16
		Colons        []int
		Final         uint8
	}{
		Intermediates: c.Intermediates,
		Params:        c.Params,
		Final:         c.Final,
	}
	if c.ParamsSet != nil {
		for i := range c.Params {
			if c.ParamsSet.IsSet(i) {
				identity.Colons = append(identity.Colons, i)
			}
		}
	}
	hashed, err := hashstructure.Hash(identity, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash command: %v", err))
	return hashed
}

// Erase in Display mode
type EDMode uint8

const (
	EDModeBelow      EDMode = 0
	EDModeAbove      EDMode = 1
	EDModeComplete   EDMode = 2
	EDModeScrollback EDMode = 3
)

// Erase in Line mode
type ELMode uint8

const (
	ELModeRight ELMode = 0
	ELModeLeft  ELMode = 1
	ELModeAll   ELMode = 2
)
