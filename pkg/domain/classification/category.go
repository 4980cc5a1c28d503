package classification

type Category string

const (
	HateSpeech    Category = "hate_speech"
	Harassment    Category = "harassment"
	Violence      Category = "violence"
	SexualContent Category = "sexual_content"
	SelfHarm      Category = "self_harm"
	Misinfo       Category = "misinformation"
)

// Categories is the fixed label set, in model output order.
var Categories = []Category{
	HateSpeech,
	Harassment,
	Violence,
	SexualContent,
	SelfHarm,
	Misinfo,
}

func (c Category) String() string {
	return string(c)
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}
