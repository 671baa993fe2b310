package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/msdocs/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added names always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)
		names := make([]string, 1000)
		for i := range names {
			names[i] = fmt.Sprintf("ApiFunction%04d", i)
			f.Add(names[i])
		}

		// No false negatives, ever.
		for _, name := range names {
			assert.True(t, f.Test(name), "name %q must test positive", name)
		}
	})

	t.Run("unknown names mostly test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)
		for i := 0; i < 1000; i++ {
			f.Add(fmt.Sprintf("ApiFunction%04d", i))
		}

		falsePositives := 0
		for i := 0; i < 1000; i++ {
			if f.Test(fmt.Sprintf("OtherFunction%04d", i)) {
				falsePositives++
			}
		}
		// 0.1% nominal rate; allow generous slack.
		assert.Less(t, falsePositives, 20)
	})
}
