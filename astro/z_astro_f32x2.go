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

package astro

import "github.com/go-highway/astro/hwy"

// Lane-pair dispatch.
//
// The z_ prefix ensures this init() runs after dispatch.go.
func init() {
	if !hwy.HasLanePairs() {
		return
	}
	MoonPhase = MoonPhase_F32x2
	SunriseSunsetRange = SunriseSunset_F32x2
	sunHours = sunEventHours_F32x2
}
