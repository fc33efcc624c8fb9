// Package textutil holds the text handling shared by the kd prompts and
// exporters: Unicode normalization of typed names, case-folded matching for
// suggestions, and file-name safe tokens.
package textutil
