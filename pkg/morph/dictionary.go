package morph

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/pkg/errors"
	"github.com/szuwgh/wordfreq/util/fileutil"

	"github.com/golang/snappy"
)

// SnappySuffix marks dictionary files compressed with snappy block format.
const SnappySuffix = ".sz"

//go:embed dict/ru.tsv
var seedRU []byte

// Dictionary looks lemmas up in a form -> lemma table.
type Dictionary struct {
	tree *iradix.Tree
}

// SeedDictionary returns the embedded table of frequent Russian forms.
func SeedDictionary() (*Dictionary, error) {
	return ParseDictionary(seedRU)
}

// LoadDictionary reads a TSV dictionary file, snappy-compressed when the name
// ends with SnappySuffix.
func LoadDictionary(path string) (*Dictionary, error) {
	m, err := fileutil.OpenMapped(path)
	if err != nil {
		return nil, errors.Wrap(err, "load dictionary")
	}
	defer m.Close()
	data := m.Bytes()
	if strings.HasSuffix(path, SnappySuffix) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, errors.Wrapf(err, "decode dictionary %s", path)
		}
	}
	d, err := ParseDictionary(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse dictionary %s", path)
	}
	return d, nil
}

// ParseDictionary reads "form<TAB>lemma" lines. Blank lines and lines
// starting with '#' are skipped, forms are lowercased, later lines win.
// The input is copied, so data may be released afterwards.
func ParseDictionary(data []byte) (*Dictionary, error) {
	txn := iradix.New().Txn()
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want 2 tab separated fields, got %d", lineNo, len(fields))
		}
		form := strings.ToLower(strings.TrimSpace(fields[0]))
		lemma := strings.ToLower(strings.TrimSpace(fields[1]))
		if form == "" || lemma == "" {
			return nil, errors.Errorf("line %d: empty form or lemma", lineNo)
		}
		txn.Insert([]byte(form), lemma)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Dictionary{tree: txn.Commit()}, nil
}

func (d *Dictionary) Normalize(token string) (string, error) {
	v, ok := d.tree.Get([]byte(token))
	if !ok {
		return "", ErrUnknownForm
	}
	return v.(string), nil
}

// Len is the number of known forms.
func (d *Dictionary) Len() int {
	return d.tree.Len()
}
