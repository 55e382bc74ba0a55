package tokenizer

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

//tokenizer
type Tokenizer interface {
	Tokenize(content []byte) Tokens
}

// Freer is implemented by tokenizers holding native resources.
type Freer interface {
	Free()
}

type Constructor func(config map[string]interface{}) (Tokenizer, error)

var (
	mu                     sync.RWMutex
	registeredConstructors = make(map[string]Constructor)
)

// RegisterConstructor makes a tokenizer type available to registries
// created afterwards. Tokenizer packages call it from init.
func RegisterConstructor(_type string, c Constructor) {
	mu.Lock()
	defer mu.Unlock()
	registeredConstructors[_type] = c
}

//tokenizer Registry
type Registry struct {
	tokenizerMap map[string]Constructor
}

func NewRegistry() *Registry {
	ret := &Registry{
		tokenizerMap: make(map[string]Constructor),
	}
	mu.RLock()
	defer mu.RUnlock()
	for typ, c := range registeredConstructors {
		ret.RegisterTokenizer(typ, c)
	}
	return ret
}

func (r *Registry) RegisterTokenizer(_type string, constructor Constructor) error {
	_, exist := r.tokenizerMap[_type]
	if exist {
		return errors.Errorf("tokenizer type %s has been existed", _type)
	}
	r.tokenizerMap[_type] = constructor
	return nil
}

func (r *Registry) NewTokenizer(_type string, config map[string]interface{}) (Tokenizer, error) {
	constructor, exist := r.tokenizerMap[_type]
	if !exist {
		return nil, errors.Errorf("tokenizer type unsupported : %v", _type)
	}
	t, err := constructor(config)
	if err != nil {
		return nil, errors.Wrapf(err, "new %s tokenizer", _type)
	}
	return t, nil
}

// Types lists the registered tokenizer types.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.tokenizerMap))
	for t := range r.tokenizerMap {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
