package sequence

import (
	"strconv"
	"strings"
)

// Classification is the result of [Classify]. Key and Token are set only for
// KindImage.
type Classification struct {
	Kind  Kind
	Key   Key
	Token string
}

// Number parses the frame token. Tokens produced by [Classify] always fit in
// an int.
func (c Classification) Number() int {
	n, _ := strconv.Atoi(c.Token)
	return n
}

// Classify decides whether name is a sequence frame, a movie, or anything
// else.
//
// A frame is <root><sep><token>.<ext> where ext is in opts.Images and the
// token is a (possibly negative) integer. The strict separator is '.'; with
// opts.Loose the underscore form "name_0001.exr" is tried first. Names that
// fail both rules fall through to the movie check on their last
// dot-component.
func Classify(name string, opts Options) Classification {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return Classification{Kind: KindOther}
	}
	ext := parts[len(parts)-1]

	if opts.Images.Contains(ext) {
		if opts.Loose {
			if c, ok := splitLoose(parts); ok {
				return c
			}
		}
		if c, ok := splitStrict(parts); ok {
			return c
		}
	}

	if opts.Movies.Contains(ext) {
		return Classification{Kind: KindMovie}
	}
	return Classification{Kind: KindOther}
}

// splitLoose handles "root_0001.ext": the frame token is the last
// underscore-separated piece of the second-to-last dot-component.
func splitLoose(parts []string) (Classification, bool) {
	pieces := strings.Split(parts[len(parts)-2], "_")
	if len(pieces) < 2 {
		return Classification{}, false
	}
	token := pieces[len(pieces)-1]
	if !isFrameToken(token) {
		return Classification{}, false
	}

	rebuilt := append([]string(nil), parts...)
	rebuilt[len(rebuilt)-2] = strings.Join(pieces[:len(pieces)-1], "_") + "_"
	return Classification{
		Kind:  KindImage,
		Key:   Key(strings.Join(rebuilt, ".")),
		Token: token,
	}, true
}

// splitStrict handles "root.0001.ext": at least three dot-components with a
// valid token in the second-to-last.
func splitStrict(parts []string) (Classification, bool) {
	if len(parts) < 3 {
		return Classification{}, false
	}
	token := parts[len(parts)-2]
	if !isFrameToken(token) {
		return Classification{}, false
	}

	rebuilt := make([]string, 0, len(parts)-1)
	rebuilt = append(rebuilt, parts[:len(parts)-2]...)
	rebuilt[len(rebuilt)-1] += "."
	rebuilt = append(rebuilt, parts[len(parts)-1])
	return Classification{
		Kind:  KindImage,
		Key:   Key(strings.Join(rebuilt, ".")),
		Token: token,
	}, true
}

// isFrameToken is ValidToken restricted to numbers that fit in an int; longer
// digit runs (hashes, timestamps) are left to the lister.
func isFrameToken(s string) bool {
	if !ValidToken(s) {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// ValidToken reports whether s is all digits, or a '-' followed by digits.
func ValidToken(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
