// Package ftjson is the reference "external parser" for the builder API
// spec.md §6 describes: it reads a declarative JSON fault-tree document
// and drives faulttree/pkg/model.Builder, then seals the result. Gate
// children may be given either as an identifier string (a reference to
// an already-declared gate or event) or as a nested, unnamed gate
// object — the latter is registered via Builder.AddInlineGate and
// surfaces through validate.Seal's implicit-gate discovery exactly like
// a fault-tree format that permits inlining a gate's definition inside
// its parent.
package ftjson

import (
	"encoding/json"
	"fmt"
	"os"

	"faulttree/pkg/expression"
	"faulttree/pkg/fterrors"
	"faulttree/pkg/model"
	"faulttree/pkg/validate"
)

// Document is the top-level shape of a fault-tree JSON file.
type Document struct {
	Name        string                 `json:"name"`
	Top         string                 `json:"top"`
	Gates       []gateDoc              `json:"gates"`
	BasicEvents []basicEventDoc        `json:"basic_events"`
	HouseEvents []houseEventDoc        `json:"house_events"`
	Expressions map[string]exprDoc     `json:"expressions"`
}

type gateDoc struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	K        int             `json:"k"`
	Children []childRef      `json:"children"`
}

type basicEventDoc struct {
	ID         string  `json:"id"`
	Expression *string `json:"expression"` // reference into Expressions, or nil
	Inline     *exprDoc `json:"inline_expression"`
}

type houseEventDoc struct {
	ID    string `json:"id"`
	State bool   `json:"state"`
}

// exprDoc is a tagged union over every expression.Expression kind, kept
// flat because JSON has no sum types. Nested expressions may repeat this
// shape recursively (Lambda, Time, ...) or reference a top-level entry
// in Document.Expressions by name via Ref.
type exprDoc struct {
	Kind  string   `json:"kind"`
	Ref   *string  `json:"ref"`
	Value *float64 `json:"value"`

	Lambda *exprDoc `json:"lambda"`
	Mu     *exprDoc `json:"mu"`
	Gamma  *exprDoc `json:"gamma"`
	Time   *exprDoc `json:"time"`
	Alpha  *exprDoc `json:"alpha"`
	Beta   *exprDoc `json:"beta"`
	T0     *exprDoc `json:"t0"`
	Tau    *exprDoc `json:"tau"`
	Theta  *exprDoc `json:"theta"`

	Terms []exprDoc `json:"terms"`
}

// childRef is either a bare identifier string or an inline gate object.
type childRef struct {
	ID    string
	Gate  *gateDoc
}

func (c *childRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		return nil
	}
	var g gateDoc
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("child must be an identifier string or an inline gate object: %w", err)
	}
	c.Gate = &g
	return nil
}

// LoadFile reads path, parses it as a Document, and builds+seals a
// fault tree from it.
func LoadFile(path string) (*model.FaultTree, []validate.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading fault tree file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing fault tree file: %w", err)
	}
	return Parse(&doc)
}

// Parse builds and seals a fault tree from an already-decoded Document.
func Parse(doc *Document) (*model.FaultTree, []validate.Diagnostic, error) {
	b := model.NewFaultTree(doc.Name)

	exprs := make(map[string]expression.Expression, len(doc.Expressions))
	var resolve func(string) (expression.Expression, error)
	var build func(exprDoc) (expression.Expression, error)

	resolve = func(id string) (expression.Expression, error) {
		if e, ok := exprs[id]; ok {
			return e, nil
		}
		d, ok := doc.Expressions[id]
		if !ok {
			return nil, fterrors.NewValidationError(doc.Name, fmt.Sprintf("undefined expression '%s'", id))
		}
		e, err := build(d)
		if err != nil {
			return nil, err
		}
		exprs[id] = e
		return e, nil
	}

	build = func(d exprDoc) (expression.Expression, error) {
		if d.Ref != nil {
			return resolve(*d.Ref)
		}
		switch d.Kind {
		case "Const":
			if d.Value == nil {
				return nil, fterrors.NewDomainError("const", "missing value")
			}
			return expression.NewConst(*d.Value), nil
		case "Exponential":
			lambda, err := build(*d.Lambda)
			if err != nil {
				return nil, err
			}
			t, err := build(*d.Time)
			if err != nil {
				return nil, err
			}
			return expression.NewExponential(lambda, t), nil
		case "GLM":
			gamma, err := build(*d.Gamma)
			if err != nil {
				return nil, err
			}
			lambda, err := build(*d.Lambda)
			if err != nil {
				return nil, err
			}
			mu, err := build(*d.Mu)
			if err != nil {
				return nil, err
			}
			t, err := build(*d.Time)
			if err != nil {
				return nil, err
			}
			return expression.NewGLM(gamma, lambda, mu, t), nil
		case "Weibull":
			alpha, err := build(*d.Alpha)
			if err != nil {
				return nil, err
			}
			beta, err := build(*d.Beta)
			if err != nil {
				return nil, err
			}
			t0, err := build(*d.T0)
			if err != nil {
				return nil, err
			}
			t, err := build(*d.Time)
			if err != nil {
				return nil, err
			}
			return expression.NewWeibull(alpha, beta, t0, t), nil
		case "PeriodicTest4":
			lambda, err := build(*d.Lambda)
			if err != nil {
				return nil, err
			}
			tau, err := build(*d.Tau)
			if err != nil {
				return nil, err
			}
			theta, err := build(*d.Theta)
			if err != nil {
				return nil, err
			}
			t, err := build(*d.Time)
			if err != nil {
				return nil, err
			}
			return expression.NewPeriodicTestInstantRepair(lambda, tau, theta, t), nil
		case "PeriodicTest5":
			lambda, err := build(*d.Lambda)
			if err != nil {
				return nil, err
			}
			mu, err := build(*d.Mu)
			if err != nil {
				return nil, err
			}
			tau, err := build(*d.Tau)
			if err != nil {
				return nil, err
			}
			theta, err := build(*d.Theta)
			if err != nil {
				return nil, err
			}
			t, err := build(*d.Time)
			if err != nil {
				return nil, err
			}
			return expression.NewPeriodicTestInstantTest(lambda, mu, tau, theta, t), nil
		case "Add":
			terms := make([]expression.Expression, len(d.Terms))
			for i, td := range d.Terms {
				e, err := build(td)
				if err != nil {
					return nil, err
				}
				terms[i] = e
			}
			return expression.NewAdd(terms...), nil
		case "Mul":
			factors := make([]expression.Expression, len(d.Terms))
			for i, td := range d.Terms {
				e, err := build(td)
				if err != nil {
					return nil, err
				}
				factors[i] = e
			}
			return expression.NewMul(factors...), nil
		default:
			return nil, fterrors.NewDomainError("expression", fmt.Sprintf("unknown expression kind '%s'", d.Kind))
		}
	}

	for id := range doc.Expressions {
		if _, err := resolve(id); err != nil {
			return nil, nil, err
		}
	}
	for id, e := range exprs {
		b.AddExpression(id, e)
	}

	for _, be := range doc.BasicEvents {
		var expr expression.Expression
		switch {
		case be.Inline != nil:
			e, err := build(*be.Inline)
			if err != nil {
				return nil, nil, err
			}
			expr = e
		case be.Expression != nil:
			e, ok := b.Expression(*be.Expression)
			if !ok {
				return nil, nil, fterrors.NewValidationError(doc.Name, fmt.Sprintf("basic event '%s' references undefined expression '%s'", be.ID, *be.Expression))
			}
			expr = e
		}
		if err := b.AddBasicEvent(be.ID, expr); err != nil {
			return nil, nil, err
		}
	}

	for _, he := range doc.HouseEvents {
		if err := b.AddHouseEvent(he.ID, he.State); err != nil {
			return nil, nil, err
		}
	}

	inlineSeq := 0
	var addGate func(g gateDoc, topLevel bool) (string, error)
	addGate = func(g gateDoc, topLevel bool) (string, error) {
		id := g.ID
		if id == "" {
			inlineSeq++
			id = fmt.Sprintf("__inline_%d", inlineSeq)
		}
		kind, err := parseKind(g.Kind)
		if err != nil {
			return "", err
		}
		childIDs := make([]string, len(g.Children))
		for i, c := range g.Children {
			if c.Gate != nil {
				childID, err := addGate(*c.Gate, false)
				if err != nil {
					return "", err
				}
				childIDs[i] = childID
			} else {
				childIDs[i] = c.ID
			}
		}
		if topLevel {
			if err := b.AddGate(id, kind, childIDs, g.K); err != nil {
				return "", err
			}
		} else {
			if err := b.AddInlineGate(id, kind, childIDs, g.K); err != nil {
				return "", err
			}
		}
		return id, nil
	}

	for _, g := range doc.Gates {
		if _, err := addGate(g, true); err != nil {
			return nil, nil, err
		}
	}

	if doc.Top != "" {
		if err := b.SetTop(doc.Top); err != nil {
			return nil, nil, err
		}
	}

	return validate.Seal(b, validate.Options{ComputeProbability: true})
}

func parseKind(s string) (model.GateKind, error) {
	switch s {
	case "AND":
		return model.GateAND, nil
	case "OR":
		return model.GateOR, nil
	case "NOT":
		return model.GateNOT, nil
	case "XOR":
		return model.GateXOR, nil
	case "NAND":
		return model.GateNAND, nil
	case "NOR":
		return model.GateNOR, nil
	case "ATLEAST":
		return model.GateATLEAST, nil
	case "NULL":
		return model.GateNULL, nil
	default:
		return "", fterrors.NewValidationError("", fmt.Sprintf("unknown gate kind '%s'", s))
	}
}
