package tokenizer

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

var RegistryInstance *Registry

func Init() {
	RegistryInstance = NewRegistry()
}

//tokenizer
type Tokenizer interface {
	Tokenize(content []byte) Tokens
}

type Constructor func(config map[string]interface{}) (Tokenizer, error)

var registeredConstructors = make(map[string]Constructor)

// RegiterConstructor is called from the init of every tokenizer package.
func RegiterConstructor(_type string, c Constructor) {
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
	for typ, c := range registeredConstructors {
		ret.RegisterTokenizer(typ, c)
	}
	return ret
}

func (r *Registry) RegisterTokenizer(_type string, constructor Constructor) error {
	_, exist := r.tokenizerMap[_type]
	if exist {
		return errors.New("tokenizer type " + _type + " has been existed")
	}
	r.tokenizerMap[_type] = constructor
	return nil
}

func (r *Registry) NewTokenizer(_type string, config map[string]interface{}) (Tokenizer, error) {
	constructor, exist := r.tokenizerMap[_type]
	if !exist {
		return nil, fmt.Errorf("tokenizer type unsupported : %v", _type)
	}
	tokenizer, err := constructor(config)
	if err != nil {
		return nil, errors.Wrapf(err, "new tokenizer %s", _type)
	}
	return tokenizer, nil
}

// Types lists the registered tokenizer types in order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.tokenizerMap))
	for typ := range r.tokenizerMap {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
