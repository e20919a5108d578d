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

package text

import (
	"bytes"
	"strings"
)

// Rule is a single literal replacement.
type Rule struct {
	// From is the exact, case-sensitive text to look for.
	From string

	// To replaces every non-overlapping occurrence of From.
	To string
}

// 📊 Result describes the outcome of applying a set of rules.
type Result struct {
	// WasModified reports whether the content differs from the original
	WasModified bool

	// ReplacementCount is the number of occurrences replaced across all rules
	ReplacementCount int

	OriginalContent []byte
	ModifiedContent []byte
}

// 🔄 Replace applies rules in order to content. Rules with an empty From are skipped.
// Every rule is applied regardless of whether an earlier rule matched.
func Replace(content []byte, rules []Rule) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	current := string(content)
	for _, rule := range rules {
		if rule.From == "" {
			continue
		}

		n := strings.Count(current, rule.From)
		if n == 0 {
			continue
		}

		result.ReplacementCount += n
		current = strings.ReplaceAll(current, rule.From, rule.To)
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = !bytes.Equal(result.OriginalContent, result.ModifiedContent)
	return result
}
