// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	"github.com/go-highway/astro/hwy"
	"github.com/go-highway/astro/internal/log"
)

// Dispatch function variables.
// These are initialized to the scalar strategy and may be overridden by the
// lane-pair strategy in z_math_f32x2.go.
var (
	// Sin computes sin(x) for both lanes.
	Sin func(v hwy.Vec[float32]) hwy.Vec[float32]

	// Cos computes cos(x) for both lanes.
	Cos func(v hwy.Vec[float32]) hwy.Vec[float32]

	// Asin computes asin(x) for both lanes.
	Asin func(v hwy.Vec[float32]) hwy.Vec[float32]

	// Acos computes acos(x) for both lanes.
	Acos func(v hwy.Vec[float32]) hwy.Vec[float32]

	// SinCosFast computes {sin(x), cos(x)} for a single angle.
	SinCosFast func(x float32) hwy.Vec[float32]
)

// Strategy names the strategy the dispatch variables are bound to.
type Strategy string

const (
	StrategyScalar   Strategy = "scalar"
	StrategyLanePair Strategy = "lane-pair"
)

var currentStrategy Strategy

// CurrentStrategy returns the strategy selected at init.
func CurrentStrategy() Strategy {
	return currentStrategy
}

func init() {
	// Initialize with the scalar strategy.
	// z_math_f32x2.go runs after this file and may override it.
	UseScalar()
}

// UseScalar binds every dispatch variable to the scalar strategy.
// It must not be called concurrently with the kernels.
func UseScalar() {
	Sin = BaseSin
	Cos = BaseCos
	Asin = BaseAsin
	Acos = BaseAcos
	SinCosFast = BaseSinCosFast
	setStrategy(StrategyScalar)
}

// UseLanePairs binds every dispatch variable to the lane-pair strategy.
// It must not be called concurrently with the kernels.
func UseLanePairs() {
	Sin = Sin_F32x2
	Cos = Cos_F32x2
	Asin = Asin_F32x2
	Acos = Acos_F32x2
	SinCosFast = SinCosFast_F32x2
	setStrategy(StrategyLanePair)
}

func setStrategy(s Strategy) {
	currentStrategy = s
	log.Debugw("math: dispatch strategy", "strategy", string(s), "level", hwy.CurrentName())
}
