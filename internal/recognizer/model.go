package recognizer

import (
	"fmt"
	"strings"
)

// ModelSize selects a Whisper capability tier.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// ModelSizes lists the supported tiers from fastest to most accurate.
func ModelSizes() []ModelSize {
	return []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

// ParseModelSize validates s against the supported tiers.
func ParseModelSize(s string) (ModelSize, error) {
	size := ModelSize(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range ModelSizes() {
		if size == m {
			return size, nil
		}
	}
	return "", fmt.Errorf("unknown model size %q (want one of tiny, base, small, medium, large)", s)
}

func (m ModelSize) String() string { return string(m) }

// GGMLFile is the whisper.cpp model file name for this tier.
func (m ModelSize) GGMLFile() string {
	if m == ModelLarge {
		return "ggml-large-v3.bin"
	}
	return "ggml-" + string(m) + ".bin"
}
