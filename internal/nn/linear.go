package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/autograd/internal/graph"
)

// Linear implements a fully connected layer over scalar nodes.
//
// Output j is b[j] + sum_i W[j][i] * x[i].
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zero.
//
// Example:
//
//	layer := nn.NewLinear(s, "fc1", 2, 4, rng)
//	hidden := layer.Forward(s, inputs) // 4 nodes
type Linear struct {
	inFeatures  int
	outFeatures int
	weights     [][]*Parameter // [out_features][in_features]
	biases      []*Parameter   // [out_features]
}

// NewLinear creates a Linear layer whose parameters are placeholders in s.
// Parameter names are "<name>.weight[j][i]" and "<name>.bias[j]".
func NewLinear(s *graph.Session, name string, inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("Linear: invalid dimensions %dx%d", inFeatures, outFeatures))
	}

	weights := make([][]*Parameter, outFeatures)
	biases := make([]*Parameter, outFeatures)
	for j := range outFeatures {
		weights[j] = make([]*Parameter, inFeatures)
		for i := range inFeatures {
			pname := fmt.Sprintf("%s.weight[%d][%d]", name, j, i)
			weights[j][i] = NewParameter(s, pname, Xavier(inFeatures, outFeatures, rng))
		}
		biases[j] = NewParameter(s, fmt.Sprintf("%s.bias[%d]", name, j), 0)
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     weights,
		biases:      biases,
	}
}

// Forward appends the weighted sums for inputs to s.
// It panics if len(inputs) differs from the layer's input width.
func (l *Linear) Forward(s *graph.Session, inputs []graph.Idx) []graph.Idx {
	if len(inputs) != l.inFeatures {
		panic(fmt.Sprintf("Linear: expected %d inputs, got %d", l.inFeatures, len(inputs)))
	}

	outputs := make([]graph.Idx, l.outFeatures)
	for j, row := range l.weights {
		acc := l.biases[j].Node()
		for i, w := range row {
			acc = s.Sum(acc, s.Multiply(w.Node(), inputs[i]))
		}
		outputs[j] = acc
	}
	return outputs
}

// Parameters returns the weights row by row, then the biases.
func (l *Linear) Parameters() []*Parameter {
	params := make([]*Parameter, 0, l.inFeatures*l.outFeatures+l.outFeatures)
	for _, row := range l.weights {
		params = append(params, row...)
	}
	return append(params, l.biases...)
}

// Weight returns the parameter connecting input i to output j.
func (l *Linear) Weight(j, i int) *Parameter {
	return l.weights[j][i]
}

// Bias returns the bias of output j.
func (l *Linear) Bias(j int) *Parameter {
	return l.biases[j]
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
