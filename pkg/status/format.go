// Copyright 2025 walteh LLC
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

package status

import (
	"fmt"
	"strings"
)

// 🎨 Formatter turns signals into single terminal lines
type Formatter interface {
	// FormatProgress formats a percentage
	FormatProgress(percent int) string
	// FormatCompletion formats a completion status
	FormatCompletion(text string, isError bool) string
	// FormatLock formats a lock change
	FormatLock(locked bool) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

const progressWidth = 20

// FormatProgress formats a percentage as a small bar
func (f *DefaultFormatter) FormatProgress(percent int) string {
	percent = ClampProgress(percent)
	filled := percent * progressWidth / MaxProgress
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	if percent >= MaxProgress {
		return fmt.Sprintf("✅ [%s] %3d%%", bar, percent)
	}
	return fmt.Sprintf("⏳ [%s] %3d%%", bar, percent)
}

// FormatCompletion formats a completion message with emoji
func (f *DefaultFormatter) FormatCompletion(text string, isError bool) string {
	if isError {
		return fmt.Sprintf("❌ %s", text)
	}
	return fmt.Sprintf("✅ %s", text)
}

// FormatLock formats a lock change with emoji
func (f *DefaultFormatter) FormatLock(locked bool) string {
	if locked {
		return "🔒 commands locked"
	}
	return "🔓 commands unlocked"
}
