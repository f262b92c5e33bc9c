package evalbuilder

import (
	"fmt"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/engine"
)

func Get(key string) engine.Evaluator {
	switch key {
	case "", "material":
		return engine.MaterialEvaluator{}
	case "random":
		return engine.RandomEvaluator{}
	}
	panic(fmt.Errorf("bad eval %v", key))
}
