package config

import "github.com/iancoleman/strcase"

// NamingConvention maps record field names between the three shapes used by
// the back office: lowerCamel upstream API fields, snake_case query
// parameters and human readable column titles.
type NamingConvention interface {
	ToQueryParam(field string) string
	ToAPIField(param string) string
	ToColumnTitle(field string) string
}

type NamingConventionFn func() NamingConvention

type defaultNaming struct {
}

func NewDefaultNaming() NamingConvention {
	return &defaultNaming{}
}

func (n *defaultNaming) ToQueryParam(field string) string {
	return strcase.ToSnake(field)
}

func (n *defaultNaming) ToAPIField(param string) string {
	return strcase.ToLowerCamel(param)
}

func (n *defaultNaming) ToColumnTitle(field string) string {
	return strcase.ToDelimited(field, ' ')
}
