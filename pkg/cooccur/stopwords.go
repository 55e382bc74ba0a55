package cooccur

import (
	"bufio"
	"os"
	"strings"

	iradix "github.com/hashicorp/go-immutable-radix"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// DefaultStopwordsPath is where the stopword list is looked up when no
// other path is configured.
const DefaultStopwordsPath = "stopwords.txt"

var defaultStopwords = []string{
	"的", "是", "在", "了", "和", "有", "我", "你", "他", "这",
	"，", "。", "、", "\n", " ", "：",
}

// StopwordSet is an immutable set of terms excluded before ranking.
// The zero value is an empty set.
type StopwordSet struct {
	tree *iradix.Tree
}

func NewStopwordSet(terms ...string) StopwordSet {
	txn := iradix.New().Txn()
	for _, t := range terms {
		txn.Insert([]byte(t), struct{}{})
	}
	return StopwordSet{tree: txn.Commit()}
}

// DefaultStopwords returns the built-in set of common function words and
// punctuation marks.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(defaultStopwords...)
}

func (s StopwordSet) Contains(term string) bool {
	if s.tree == nil {
		return false
	}
	_, ok := s.tree.Get([]byte(term))
	return ok
}

func (s StopwordSet) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Terms returns the members in byte order.
func (s StopwordSet) Terms() []string {
	if s.tree == nil {
		return nil
	}
	terms := make([]string, 0, s.tree.Len())
	s.tree.Root().Walk(func(k []byte, _ interface{}) bool {
		terms = append(terms, string(k))
		return false
	})
	return terms
}

// OrDefault substitutes the built-in set when s is empty.
func (s StopwordSet) OrDefault() StopwordSet {
	if s.Len() == 0 {
		return DefaultStopwords()
	}
	return s
}

// LoadStopwords reads one term per line. Lines are trimmed and blank lines
// skipped. A missing file yields ErrStopwordsNotFound.
func LoadStopwords(path string) (StopwordSet, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return StopwordSet{}, errors.Wrapf(err, "expand stopword path %s", path)
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return StopwordSet{}, errors.Wrap(ErrStopwordsNotFound, p)
		}
		return StopwordSet{}, errors.Wrapf(err, "open stopword file %s", p)
	}
	defer f.Close()

	txn := iradix.New().Txn()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		txn.Insert([]byte(line), struct{}{})
	}
	if err := scanner.Err(); err != nil {
		return StopwordSet{}, errors.Wrapf(err, "read stopword file %s", p)
	}
	return StopwordSet{tree: txn.Commit()}, nil
}

// LoadStopwordsOrDefault is LoadStopwords with the missing-file and
// empty-file cases recovered by the built-in set. When the file is missing
// the default set is returned together with the ErrStopwordsNotFound error
// so the caller can report it; IsStopwordsNotFound tells it apart from a
// real failure.
func LoadStopwordsOrDefault(path string) (StopwordSet, error) {
	set, err := LoadStopwords(path)
	if err != nil {
		if IsStopwordsNotFound(err) {
			return DefaultStopwords(), err
		}
		return StopwordSet{}, err
	}
	return set.OrDefault(), nil
}

func IsStopwordsNotFound(err error) bool {
	return errors.Cause(err) == ErrStopwordsNotFound
}
