package config

// IntentsConfig tunes the rule cascade of the intent classifier. Every list
// left empty in the YAML file keeps its built-in default.
type IntentsConfig struct {
	Keywords   KeywordSets `yaml:"keywords"`
	Confidence Confidences `yaml:"confidence"`
}

type KeywordSets struct {
	MentalHealth    []string `yaml:"mental_health"`
	CopingActions   []string `yaml:"coping_actions"`
	Medications     []string `yaml:"medications"`
	QuestionPhrases []string `yaml:"question_phrases"`
	SymptomPhrases  []string `yaml:"symptom_phrases"`
	SymptomWords    []string `yaml:"symptom_words"`
	WellnessTopics  []string `yaml:"wellness_topics"`
	AdviceWords     []string `yaml:"advice_words"`
	Summary         []string `yaml:"summary"`
}

// Confidences are the fixed scores reported when a rule group fires.
type Confidences struct {
	MentalHealth  float64 `yaml:"mental_health"`
	Medication    float64 `yaml:"medication"`
	SymptomPhrase float64 `yaml:"symptom_phrase"`
	SymptomWord   float64 `yaml:"symptom_word"`
	Wellness      float64 `yaml:"wellness"`
	Summary       float64 `yaml:"summary"`
}
