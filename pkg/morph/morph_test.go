package morph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SeedDictionary(t *testing.T) {
	d, err := SeedDictionary()
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 50)

	for form, lemma := range map[string]string{
		"мыла":  "мыть",
		"раму":  "рама",
		"рама":  "рама",
		"мылом": "мыло",
		"мама":  "мама",
	} {
		got, err := d.Normalize(form)
		require.NoError(t, err, form)
		assert.Equal(t, lemma, got, form)
	}

	_, err = d.Normalize("абракадабра")
	assert.True(t, errors.Is(err, ErrUnknownForm))
}

func Test_ParseDictionary(t *testing.T) {
	d, err := ParseDictionary([]byte("# comment\n\nCats\tcat\ncat\tcat\ncats\tfeline\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	lemma, err := d.Normalize("cats")
	require.NoError(t, err)
	assert.Equal(t, "feline", lemma)

	_, err = ParseDictionary([]byte("one field\n"))
	assert.Error(t, err)
	_, err = ParseDictionary([]byte("a\t\n"))
	assert.Error(t, err)
}

func Test_LoadDictionary(t *testing.T) {
	dir := t.TempDir()
	raw := []byte("geese\tgoose\n")

	plain := filepath.Join(dir, "en.tsv")
	require.NoError(t, os.WriteFile(plain, raw, 0644))
	compressed := filepath.Join(dir, "en.tsv"+SnappySuffix)
	require.NoError(t, os.WriteFile(compressed, snappy.Encode(nil, raw), 0644))

	for _, path := range []string{plain, compressed} {
		d, err := LoadDictionary(path)
		require.NoError(t, err, path)
		lemma, err := d.Normalize("geese")
		require.NoError(t, err)
		assert.Equal(t, "goose", lemma)
	}

	broken := filepath.Join(dir, "broken"+SnappySuffix)
	require.NoError(t, os.WriteFile(broken, raw, 0644))
	_, err := LoadDictionary(broken)
	assert.Error(t, err)

	_, err = LoadDictionary(filepath.Join(dir, "missing.tsv"))
	assert.Error(t, err)
}

func Test_Stemmer(t *testing.T) {
	s, err := NewStemmer("english")
	require.NoError(t, err)
	a, err := s.Normalize("running")
	require.NoError(t, err)
	b, err := s.Normalize("runs")
	require.NoError(t, err)
	assert.Equal(t, "run", a)
	assert.Equal(t, a, b)

	ru, err := NewStemmer("russian")
	require.NoError(t, err)
	x, _ := ru.Normalize("рамой")
	y, _ := ru.Normalize("рамы")
	assert.Equal(t, x, y)

	_, err = NewStemmer("klingon")
	assert.Error(t, err)
}

func Test_Fallback(t *testing.T) {
	d, err := ParseDictionary([]byte("мыла\tмыть\n"))
	require.NoError(t, err)
	upper := NormalizerFunc(func(token string) (string, error) { return "x" + token, nil })

	fb := Fallback{d, upper}
	got, err := fb.Normalize("мыла")
	require.NoError(t, err)
	assert.Equal(t, "мыть", got)
	got, err = fb.Normalize("рама")
	require.NoError(t, err)
	assert.Equal(t, "xрама", got)

	_, err = Fallback{d}.Normalize("рама")
	assert.True(t, errors.Is(err, ErrUnknownForm))
	_, err = Fallback{}.Normalize("рама")
	assert.True(t, errors.Is(err, ErrUnknownForm))
}

func Test_New(t *testing.T) {
	n, err := New(Options{Kind: KindIdentity})
	require.NoError(t, err)
	got, _ := n.Normalize("Word")
	assert.Equal(t, "Word", got)

	n, err = New(Options{Kind: KindAuto, Language: "russian"})
	require.NoError(t, err)
	got, err = n.Normalize("мыла")
	require.NoError(t, err)
	assert.Equal(t, "мыть", got)
	got, err = n.Normalize("кошками")
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	n, err = New(Options{Kind: KindDictionary})
	require.NoError(t, err)
	got, err = n.Normalize("кошками")
	require.NoError(t, err)
	assert.Equal(t, "кошками", got)

	_, err = New(Options{Kind: KindSnowball, Language: "klingon"})
	assert.Error(t, err)
	_, err = New(Options{Kind: "pymorphy"})
	assert.Error(t, err)
	_, err = New(Options{Kind: KindDictionary, DictPath: filepath.Join(t.TempDir(), "none.tsv")})
	assert.Error(t, err)
}

func Test_LemmatizerPartialCoverage(t *testing.T) {
	d, err := ParseDictionary([]byte("рама\tрама\n"))
	require.NoError(t, err)
	s, err := NewStemmer("russian")
	require.NoError(t, err)
	l := NewLemmatizer(d, s)

	for _, form := range []string{"рама", "раму", "рамой", "рамами"} {
		got, err := l.Normalize(form)
		require.NoError(t, err, form)
		assert.Equal(t, "рама", got, form)
	}
	got, err := l.Normalize("окнами")
	require.NoError(t, err)
	assert.Equal(t, "окн", got)
}

func Test_LemmatizerSeed(t *testing.T) {
	n, err := New(Options{Kind: KindAuto, Language: "russian"})
	require.NoError(t, err)
	for form, lemma := range map[string]string{
		"мою":    "мыть",
		"моешь":  "мыть",
		"моем":   "мыть",
		"мылами": "мыло",
		"рамами": "рама",
	} {
		got, err := n.Normalize(form)
		require.NoError(t, err, form)
		assert.Equal(t, lemma, got, form)
	}
}

func Test_PickLemma(t *testing.T) {
	assert.Equal(t, "мыло", pickLemma(map[string]int{"мыло": 4, "мыть": 3}))
	assert.Equal(t, "a", pickLemma(map[string]int{"b": 2, "a": 2}))
}
