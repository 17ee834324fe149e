package collector

import (
	"testing"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrant struct {
	names []string
	nilF  bool
}

func (r registrant) Name() string { return "checkout" }

func (r registrant) RegisterTestCases(reg core.TestRegistrar) error {
	for _, name := range r.names {
		if r.nilF {
			reg.RegisterTestCase(name, nil)
			continue
		}
		reg.RegisterTestCase(name, func(core.TestCase) error { return nil })
	}
	return nil
}

func TestCollectTestCases(t *testing.T) {
	cases, err := CollectTestCases(registrant{names: []string{"open_cart", "pay", "confirm"}})
	require.NoError(t, err)

	names := make([]string, 0, len(cases))
	for _, c := range cases {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"open_cart", "pay", "confirm"}, names)
}

func TestCollectTestCasesErrors(t *testing.T) {
	tests := []struct {
		name string
		r    registrant
	}{
		{name: "empty", r: registrant{}},
		{name: "duplicate", r: registrant{names: []string{"pay", "pay"}}},
		{name: "invalid name", r: registrant{names: []string{"pay now"}}},
		{name: "nil function", r: registrant{names: []string{"pay"}, nilF: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CollectTestCases(tt.r)
			assert.Error(t, err)
		})
	}
}
