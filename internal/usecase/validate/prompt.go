package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	zhRe = regexp.MustCompile("[一-鿿]")
	enRe = regexp.MustCompile("[a-zA-Z]")
	jaRe = regexp.MustCompile("[぀-ゟ゠-ヿ]")
	koRe = regexp.MustCompile("[가-힯]")
)

// charCount weighs ASCII runes as 0.5 characters and everything else as 1.
func charCount(text string) float64 {
	var count float64
	for _, r := range text {
		if r > 127 {
			count++
		} else {
			count += 0.5
		}
	}
	return count
}

func checkBannedWords(text, bannedWords string) *LimitError {
	if strings.TrimSpace(bannedWords) == "" {
		return nil
	}
	for _, w := range strings.Split(bannedWords, ";") {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if strings.Contains(text, w) {
			return &LimitError{Code: "301", Message: fmt.Sprintf("prompt contains the banned word %q", w)}
		}
	}
	return nil
}

func checkCharCount(text, limitStr string) *LimitError {
	b, err := parseBounds(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad character count limit: %v", err)}
	}
	if b == nil {
		return nil
	}
	count := charCount(text)
	if b.min > 0 && count < float64(b.min) {
		return &LimitError{Code: "302", Message: fmt.Sprintf("prompt too short, %d characters counted, at least %d required", int(count), b.min)}
	}
	if b.max > 0 && count > float64(b.max) {
		return &LimitError{Code: "303", Message: fmt.Sprintf("prompt too long, %d characters counted, at most %d allowed", int(count), b.max)}
	}
	return nil
}

// detectLanguages reports the scripts present in text by codepoint range.
func detectLanguages(text string) []string {
	var langs []string
	if zhRe.MatchString(text) {
		langs = append(langs, "zh")
	}
	if enRe.MatchString(text) {
		langs = append(langs, "en")
	}
	if jaRe.MatchString(text) {
		langs = append(langs, "ja")
	}
	if koRe.MatchString(text) {
		langs = append(langs, "ko")
	}
	if len(langs) == 0 {
		return []string{"unknown"}
	}
	return langs
}

// checkLanguage passes when any detected script is in the supported list.
func checkLanguage(text, supported string) *LimitError {
	if strings.TrimSpace(supported) == "" {
		return nil
	}
	var supportedList []string
	for _, lang := range strings.Split(supported, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			supportedList = append(supportedList, lang)
		}
	}
	if len(supportedList) == 0 {
		return nil
	}
	detected := detectLanguages(text)
	for _, lang := range detected {
		for _, s := range supportedList {
			if lang == s {
				return nil
			}
		}
	}
	return &LimitError{
		Code:    "304",
		Message: fmt.Sprintf("prompt language not allowed, detected %s, supported: %s", strings.Join(detected, ","), supported),
	}
}
