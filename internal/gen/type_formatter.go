package gen

import (
	"fmt"
	"strconv"
	"strings"

	"navroute-generator/nav"
)

// typeRef describes how one declared argument type is spelled in
// generated code.
type typeRef struct {
	GoType    string // Field type in the Args struct, e.g. "int"
	Ctor      string // Value constructor, e.g. "nav.Int"
	TypeConst string // ArgType constant, e.g. "nav.TypeInt"
}

// formatter renders runtime references with the import's qualifier.
type formatter struct {
	qualifier string
}

func (f formatter) qualify(name string) string {
	if f.qualifier == "" {
		return name
	}

	return f.qualifier + "." + name
}

// typeRef returns the Go spellings for t.
func (f formatter) typeRef(t nav.ArgType) (typeRef, error) {
	var goType, ctor, constant string

	switch t {
	case nav.TypeString:
		goType, ctor, constant = "string", "String", "TypeString"
	case nav.TypeInt:
		goType, ctor, constant = "int", "Int", "TypeInt"
	case nav.TypeBool:
		goType, ctor, constant = "bool", "Bool", "TypeBool"
	case nav.TypeFloat:
		goType, ctor, constant = "float64", "Float", "TypeFloat"
	default:
		return typeRef{}, fmt.Errorf("unsupported argument type %s", t)
	}

	return typeRef{
		GoType:    goType,
		Ctor:      f.qualify(ctor),
		TypeConst: f.qualify(constant),
	}, nil
}

// valueExpr returns a Go expression constructing v.
func (f formatter) valueExpr(v nav.Value) string {
	switch v.Kind() {
	case nav.KindString:
		s, _ := v.AsString()
		return f.qualify("String") + "(" + strconv.Quote(s) + ")"
	case nav.KindInt:
		i, _ := v.AsInt()
		return f.qualify("Int") + "(" + strconv.Itoa(i) + ")"
	case nav.KindBool:
		b, _ := v.AsBool()
		return f.qualify("Bool") + "(" + strconv.FormatBool(b) + ")"
	case nav.KindFloat:
		fl, _ := v.AsFloat()
		return f.qualify("Float") + "(" + floatLiteral(fl) + ")"
	default:
		return f.qualify("Null") + "()"
	}
}

// defaultExpr returns the expression for an argument's Default field.
func (f formatter) defaultExpr(v nav.Value) string {
	return f.qualify("Default") + "(" + f.valueExpr(v) + ")"
}

// floatLiteral formats fl so that it reads as a float constant.
func floatLiteral(fl float64) string {
	s := strconv.FormatFloat(fl, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
