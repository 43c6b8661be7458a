// Copyright 2024 The nutsdb Author. All rights reserved.
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

package tryiter

import "github.com/pkg/errors"

// ErrInvalidStep is returned by StepBy when the step is not positive.
var ErrInvalidStep = errors.New("step must be positive")

// ErrRangeTooLarge is returned by Range when the interval holds more values
// than an int can count.
var ErrRangeTooLarge = errors.New("range length overflows int")

// IsInvalidStep is true if the error indicates a StepBy step out of range.
func IsInvalidStep(err error) bool {
	return errors.Is(err, ErrInvalidStep)
}
