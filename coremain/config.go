package coremain

import (
	"github.com/pmkol/slist/mlog"
	"github.com/pmkol/slist/pkg/script"
)

type Config struct {
	Log     mlog.LogConfig `yaml:"log"`
	Include []string       `yaml:"include"`
	Ops     []script.Op    `yaml:"ops"`
}
