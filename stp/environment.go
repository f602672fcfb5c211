package stp

import (
	"fmt"
	"strings"
)

type Environment int

const (
	Demo Environment = iota
	Prod
)

func (e Environment) BaseURL() string {
	switch e {
	case Prod:
		return "https://prod.stpmex.com"
	case Demo:
		return "https://demo.stpmex.com:7024"
	}
	panic("Invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Prod:
		return "prod"
	case Demo:
		return "demo"
	}
	panic("Invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "prod":
		*e = Prod
	case "demo":
		*e = Demo
	default:
		return fmt.Errorf("invalid STP_ENV: %q (allowed: prod, demo)", val)
	}
	return nil
}
