// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package chipset

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// TypeFlag is a pflag.Value implementation that stores a chipset Type.
type TypeFlag Type

var _ pflag.Value = (*TypeFlag)(nil)

func (tf *TypeFlag) String() string { return Type(*tf).String() }

// Set implements pflag.Value.
func (tf *TypeFlag) Set(v string) error {
	needle := strings.ToUpper(v)
	for t := range typeInfos {
		if typeInfos[t].name == needle {
			*tf = TypeFlag(t)
			return nil
		}
	}
	return errors.Errorf("unknown chipset type: %q", v)
}

// Type implements pflag.Value.
func (tf *TypeFlag) Type() string { return "chipset.Type" }

// Value returns the chipset type held by this flag.
func (tf TypeFlag) Value() Type { return Type(tf) }

// TypeFlagValues returns the list of possible values for a TypeFlag.
func TypeFlagValues() string {
	opts := make([]string, len(typeInfos))
	for t := range typeInfos {
		opts[t] = typeInfos[t].name
	}
	return strings.Join(opts, ", ")
}
