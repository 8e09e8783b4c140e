// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultReplacement is the generic message substituted for redacted
// values when a rule does not supply its own replacement text.
const DefaultReplacement = "[Redacted]"

// Rule maps a mapping key name to replacement text. An empty
// Replacement means the generic DefaultReplacement message.
//
// In YAML configuration a rule is written either as a bare key name or
// as a key/replacement pair:
//
//	redaction:
//	  - apiKey
//	  - key: templateContent
//	    replacement: Removed for performance reasons
type Rule struct {
	Key         string `yaml:"key"`
	Replacement string `yaml:"replacement,omitempty"`
}

// UnmarshalYAML accepts both the bare-string and the mapping form.
func (rule *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		rule.Replacement = ""
		return node.Decode(&rule.Key)
	}
	type plain Rule
	if err := node.Decode((*plain)(rule)); err != nil {
		return err
	}
	if rule.Key == "" {
		return fmt.Errorf("redaction rule at line %d has no key", node.Line)
	}
	return nil
}

// RuleSet is an ordered list of redaction rules. Rules are checked in
// configured order and the first match wins, so duplicate entries for
// the same key resolve deterministically to the first one listed.
type RuleSet []Rule

// Redact builds a RuleSet from bare key names, each using the generic
// replacement message.
func Redact(keys ...string) RuleSet {
	rules := make(RuleSet, len(keys))
	for index, key := range keys {
		rules[index] = Rule{Key: key}
	}
	return rules
}

// Resolve returns the replacement text for key and whether any rule
// matched. Lookup is linear in the number of rules; rule sets are
// small configuration, not data.
func (rules RuleSet) Resolve(key string) (string, bool) {
	for _, rule := range rules {
		if rule.Key != key {
			continue
		}
		if rule.Replacement == "" {
			return DefaultReplacement, true
		}
		return rule.Replacement, true
	}
	return "", false
}
