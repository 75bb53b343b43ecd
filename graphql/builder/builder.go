/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package builder

import (
	"sort"
	"sync"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/graphql/internal/lexer"
	"github.com/botobag/sdlgraph/graphql/internal/value"
	"github.com/botobag/sdlgraph/internal/util"

	"go.uber.org/zap"
)

// DefinitionMap maps type name to its definition.
type DefinitionMap map[string]ast.Definition

// TypeResolver resolves names that are absent from the DefinitionMap given to a Builder. node is
// the type reference that causes the resolution or nil when the type is resolved by name.
type TypeResolver interface {
	ResolveType(name string, node ast.Type) (graphql.Type, error)
}

// ResolveTypeFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type ResolveTypeFunc func(name string, node ast.Type) (graphql.Type, error)

// ResolveType calls f(name, node).
func (f ResolveTypeFunc) ResolveType(name string, node ast.Type) (graphql.Type, error) {
	return f(name, node)
}

var _ TypeResolver = (ResolveTypeFunc)(nil)

// Options configures a Builder. Unset fields fall back to defaults.
type Options struct {
	// LegacyCommentDescriptions enables using the block of comments right before a definition as its
	// description when the definition doesn't provide one.
	LegacyCommentDescriptions bool

	// CoerceDefaultValue coerces the default value literal of an argument or an input field. Default
	// to value.CoerceFromAST.
	CoerceDefaultValue func(node ast.Value, t graphql.Type) (interface{}, error)

	// DirectiveValues extracts argument values for a directive from the directives applied to a
	// node. Default to value.DirectiveValues.
	DirectiveValues func(directive *graphql.Directive, directives ast.Directives) (map[string]interface{}, error)

	// Dedent trims the common indentation from the text of legacy comment descriptions. Default to
	// the algorithm used for block strings.
	Dedent func(raw string) string

	// Logger receives debug messages about type materialization. Default to a no-op logger.
	Logger *zap.Logger
}

// Builder builds types from definitions in schema language. A type is built at most once and every
// reference to the same name resolves to the same instance.
type Builder struct {
	definitions DefinitionMap
	options     Options
	resolver    TypeResolver
	logger      *zap.Logger

	// mutex guards types and building.
	mutex sync.Mutex
	types map[string]graphql.Type

	// building contains names of the definitions that are being built.
	building map[string]bool
}

// New creates a Builder for the given definitions. resolver is consulted for names that are not in
// definitions; It can be nil.
func New(definitions DefinitionMap, options Options, resolver TypeResolver) *Builder {
	if options.CoerceDefaultValue == nil {
		options.CoerceDefaultValue = value.CoerceFromAST
	}
	if options.DirectiveValues == nil {
		options.DirectiveValues = value.DirectiveValues
	}
	if options.Dedent == nil {
		options.Dedent = lexer.BlockStringValue
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{
		definitions: definitions,
		options:     options,
		resolver:    resolver,
		logger:      logger,
		types:       graphql.StandardTypes(),
		building:    map[string]bool{},
	}
}

// ResolveType returns the type with the given name.
func (b *Builder) ResolveType(name string) (graphql.Type, error) {
	return b.resolve(name, nil)
}

// ResolveTypeRef returns the type referred by node with its list and non-null wrappers applied.
func (b *Builder) ResolveTypeRef(node ast.Type) (graphql.Type, error) {
	namedType := UnwrapToNamed(node)
	t, err := b.resolve(namedType.Name.Value(), node)
	if err != nil {
		return nil, err
	}
	return Rewrap(t, node)
}

// BuildInputType resolves node which must refer to an input type.
func (b *Builder) BuildInputType(node ast.Type) (graphql.Type, error) {
	t, err := b.ResolveTypeRef(node)
	if err != nil {
		return nil, err
	}
	if !graphql.IsInputType(t) {
		return nil, newInvariantViolationError("builder.BuildInputType", "input type", t, node)
	}
	return t, nil
}

// BuildOutputType resolves node which must refer to an output type.
func (b *Builder) BuildOutputType(node ast.Type) (graphql.Type, error) {
	t, err := b.ResolveTypeRef(node)
	if err != nil {
		return nil, err
	}
	if !graphql.IsOutputType(t) {
		return nil, newInvariantViolationError("builder.BuildOutputType", "output type", t, node)
	}
	return t, nil
}

// BuildObjectType resolves the type with the given name which must be an Object.
func (b *Builder) BuildObjectType(name string) (graphql.Object, error) {
	return b.buildObjectType(name, nil)
}

// BuildObjectTypeRef resolves the type referred by node which must be an Object.
func (b *Builder) BuildObjectTypeRef(node ast.NamedType) (graphql.Object, error) {
	return b.buildObjectType(node.Name.Value(), node)
}

func (b *Builder) buildObjectType(name string, node ast.Type) (graphql.Object, error) {
	t, err := b.resolve(name, node)
	if err != nil {
		return nil, err
	}
	object, ok := t.(graphql.Object)
	if !ok {
		return nil, newInvariantViolationError("builder.BuildObjectType", "Object", t, node)
	}
	return object, nil
}

// BuildInterfaceType resolves the type with the given name which must be an Interface.
func (b *Builder) BuildInterfaceType(name string) (graphql.Interface, error) {
	return b.buildInterfaceType(name, nil)
}

// BuildInterfaceTypeRef resolves the type referred by node which must be an Interface.
func (b *Builder) BuildInterfaceTypeRef(node ast.NamedType) (graphql.Interface, error) {
	return b.buildInterfaceType(node.Name.Value(), node)
}

func (b *Builder) buildInterfaceType(name string, node ast.Type) (graphql.Interface, error) {
	t, err := b.resolve(name, node)
	if err != nil {
		return nil, err
	}
	iface, ok := t.(graphql.Interface)
	if !ok {
		return nil, newInvariantViolationError("builder.BuildInterfaceType", "Interface", t, node)
	}
	return iface, nil
}

// resolve finds the type with the given name from cache, definitions or the fallback resolver in
// order.
func (b *Builder) resolve(name string, node ast.Type) (graphql.Type, error) {
	if t := b.lookup(name); t != nil {
		return t, nil
	}

	if definition, exists := b.definitions[name]; exists {
		if !b.enter(name) {
			e := &CyclicTypeError{Name: name}
			return nil, newError("builder.ResolveType", e.Error(), e, node)
		}
		t, err := b.BuildType(definition)
		b.leave(name)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("built type",
			zap.String("type", name),
			zap.String("kind", kindOf(t)))
		return b.store(name, t), nil
	}

	b.logger.Debug("resolving type with fallback", zap.String("type", name))

	var (
		t   graphql.Type
		err error
	)
	if b.resolver != nil {
		t, err = b.resolver.ResolveType(name, node)
	}
	if b.resolver == nil || err != nil || isNil(t) {
		e := &UndefinedTypeError{
			Name:        name,
			Suggestions: util.SuggestionList(name, b.knownNames()),
			Err:         err,
		}
		return nil, newError("builder.ResolveType", e.Error(), e, node)
	}

	return b.store(name, t), nil
}

// lookup returns the cached type with the given name or nil.
func (b *Builder) lookup(name string) graphql.Type {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.types[name]
}

// enter marks the definition of name as being built. It returns false if it is already.
func (b *Builder) enter(name string) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.building[name] {
		return false
	}
	b.building[name] = true
	return true
}

func (b *Builder) leave(name string) {
	b.mutex.Lock()
	delete(b.building, name)
	b.mutex.Unlock()
}

// store adds t to the cache under name unless there's one already. It returns the one in the cache.
func (b *Builder) store(name string, t graphql.Type) graphql.Type {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if prev, exists := b.types[name]; exists {
		return prev
	}
	b.types[name] = t
	return t
}

// knownNames returns the names in the definitions and the cache in sorted order.
func (b *Builder) knownNames() []string {
	seen := make(map[string]bool, len(b.definitions))
	for name := range b.definitions {
		seen[name] = true
	}
	b.mutex.Lock()
	for name := range b.types {
		seen[name] = true
	}
	b.mutex.Unlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
