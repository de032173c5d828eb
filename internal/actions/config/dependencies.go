package config

import (
	"fmt"

	"github.com/footprint-tools/argp/internal/config"
)

type Deps struct {
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Set        func(key, value string) error
	Unset      func(key string) error
	WriteLines func([]string) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	provider := config.NewProvider()
	return Deps{
		Get:     provider.Get,
		GetAll:  provider.GetAll,
		Set:     provider.Set,
		Unset:   provider.Unset,
		Printf:  fmt.Printf,
		Println: fmt.Println,
		WriteLines: func(lines []string) error {
			return config.WithLock(func() error { return config.WriteLines(lines) })
		},
	}
}
