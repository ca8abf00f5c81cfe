// Package scenario loads belief revision scenarios from yaml files: an
// initial prioritized belief base plus a list of operations to run against
// it.
package scenario

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/beliefkit/beliefkit/pkg/belief"
	"github.com/beliefkit/beliefkit/pkg/logic"
	"github.com/beliefkit/beliefkit/pkg/revision"
)

const (
	OpContract = "contract"
	OpExpand   = "expand"
	OpRevise   = "revise"
)

type BeliefSpec struct {
	Sentence string `json:"sentence"`
	Priority int    `json:"priority"`
}

type Operation struct {
	Op       string `json:"op"`
	Sentence string `json:"sentence"`
	Priority int    `json:"priority,omitempty"`
}

type Scenario struct {
	Beliefs    []BeliefSpec `json:"beliefs"`
	Operations []Operation  `json:"operations,omitempty"`
}

// Load reads and decodes a scenario file.
func Load(file string) (*Scenario, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	s := &Scenario{}
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario file %s: %v", file, err)
	}
	return s, nil
}

// Base parses the scenario's belief sentences and builds the initial base.
func (s *Scenario) Base() (*belief.Base, error) {
	base := belief.New()
	for _, spec := range s.Beliefs {
		sentence, err := logic.Parse(spec.Sentence)
		if err != nil {
			return nil, err
		}
		base.Add(belief.Belief{Sentence: sentence, Priority: spec.Priority})
	}
	return base, nil
}

// Apply runs the scenario's operations against the given base in order and
// returns the final base. The input base is not mutated.
func (s *Scenario) Apply(base *belief.Base) (*belief.Base, error) {
	result := base.Clone()
	for _, op := range s.Operations {
		sentence, err := logic.Parse(op.Sentence)
		if err != nil {
			return nil, err
		}
		switch op.Op {
		case OpContract:
			logrus.Infof("Contracting by %s.", sentence)
			result = revision.Contract(result, sentence)
		case OpExpand:
			logrus.Infof("Expanding with %s.", sentence)
			result = revision.Expand(result, belief.Belief{Sentence: sentence, Priority: op.Priority})
		case OpRevise:
			logrus.Infof("Revising with %s.", sentence)
			result = revision.Revise(result, belief.Belief{Sentence: sentence, Priority: op.Priority})
		default:
			return nil, fmt.Errorf("unknown operation %q", op.Op)
		}
	}
	return result, nil
}
