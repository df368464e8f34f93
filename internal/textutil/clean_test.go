package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/internal/textutil"
)

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", textutil.Clean(""))
}

func TestCleanRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses excess newlines to two",
			in:   "alpha\n\n\n\nbeta",
			want: "alpha\n\nbeta",
		},
		{
			name: "strips standalone page numbers",
			in:   "alpha\n42\nbeta",
			want: "alpha\n\nbeta",
		},
		{
			name: "strips chapter header line",
			in:   "Chapter 3 Advanced Topics\nalpha beta",
			want: "alpha beta",
		},
		{
			name: "strips section header case insensitively",
			in:   "SECTION 2 overview\nalpha beta",
			want: "alpha beta",
		},
		{
			name: "strips date footer line",
			in:   "printed on 12/31/2020\ncontent here",
			want: "content here",
		},
		{
			name: "strips time footer line",
			in:   "last saved at 09:45 by admin\ncontent here",
			want: "content here",
		},
		{
			name: "strips url lines",
			in:   "visit www.example.com for more\nsee https://example.org too\ncontent here",
			want: "content here",
		},
		{
			name: "collapses runs of spaces",
			in:   "alpha    beta  gamma",
			want: "alpha beta gamma",
		},
		{
			name: "trims each line and outer blank lines",
			in:   "\n\n  alpha  \n  beta  \n\n",
			want: "alpha\nbeta",
		},
		{
			name: "rejoins hyphenated line breaks",
			in:   "inter-\nnational relations",
			want: "international relations",
		},
		{
			name: "removes punctuation-only lines",
			in:   "alpha\n.\nbeta",
			want: "alpha\nbeta",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textutil.Clean(tc.in))
		})
	}
}

func TestCleanMixedDocument(t *testing.T) {
	raw := "Chapter 1 Introduction\n\n\n\nCell theory states that all organisms are made of cells.\n12\nThe cell is the basic unit of life.\n\nMito-\nchondria produce energy."
	want := "Cell theory states that all organisms are made of cells.\n\nThe cell is the basic unit of life.\n\nMitochondria produce energy."

	got := textutil.Clean(raw)
	require.Equal(t, want, got)
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain prose with no noise at all.",
		"alpha\n\n\n\nbeta\n7\ngamma  delta",
		"Chapter 1 Introduction\n\nCell theory states that all organisms are made of cells.\n12\nMito-\nchondria produce energy.",
	}
	for _, in := range inputs {
		once := textutil.Clean(in)
		assert.Equal(t, once, textutil.Clean(once))
	}
}

// Adjacent punctuation-only lines are stripped one per pass: the removal is
// non-overlapping, so the second line of the pair survives the first Clean.
func TestCleanAdjacentPunctuationOnlyLines(t *testing.T) {
	once := textutil.Clean("a\n.\n!\nb")
	assert.Equal(t, "a\n!\nb", once)
	assert.Equal(t, "a\nb", textutil.Clean(once))
}
