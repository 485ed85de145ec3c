package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultIntentsConfigPath = "configs/intents.yaml"

// LoadIntentsConfig reads the YAML file named by INTENTS_CONFIG_PATH. A missing
// file at the default location is not an error: built-in defaults are used.
func LoadIntentsConfig() (*IntentsConfig, error) {
	path := os.Getenv("INTENTS_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultIntentsConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg := DefaultIntentsConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// confidences absent from the file keep their defaults; an explicit 0 stays 0
	cfg := IntentsConfig{Confidence: DefaultIntentsConfig().Confidence}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func DefaultIntentsConfig() IntentsConfig {
	return IntentsConfig{
		Keywords: KeywordSets{
			MentalHealth: []string{
				"stress", "stressed", "stressful", "anxiety", "anxious", "depression",
				"depressed", "panic", "overwhelmed", "lonely", "mental health", "mood",
			},
			CopingActions: []string{
				"manage", "cope", "coping", "deal with", "handle", "reduce", "overcome",
				"relieve", "calm",
			},
			Medications: []string{
				"medication", "medications", "medicine", "drug", "drugs", "pill", "pills",
				"tablet", "ibuprofen", "paracetamol", "acetaminophen", "aspirin",
				"antibiotic", "antibiotics", "metformin", "insulin", "dosage", "dose",
				"prescription", "side effects",
			},
			QuestionPhrases: []string{
				"what is", "what are", "what does", "how does", "how do", "how much",
				"how often", "can i take", "should i take", "is it safe", "used for",
				"side effects", "tell me about",
			},
			SymptomPhrases: []string{
				"i have", "i've got", "i feel", "i'm feeling", "i am feeling", "i've been",
				"i am having", "i'm having", "i'm experiencing", "i am experiencing",
				"pain in", "my head hurts", "suffering from",
			},
			SymptomWords: []string{
				"headache", "headaches", "migraine", "fever", "cough", "nausea",
				"dizziness", "dizzy", "fatigue", "tired", "rash", "sore throat",
				"vomiting", "diarrhea", "congestion", "chills", "backache", "stomachache",
				"pain", "ache", "aches",
			},
			WellnessTopics: []string{
				"sleep", "diet", "nutrition", "exercise", "fitness", "healthy", "hydration",
				"water", "weight", "eating", "workout", "wellness", "energy", "meditation",
				"posture", "habits",
			},
			AdviceWords: []string{
				"how can i", "how to", "improve", "tips", "tip", "advice", "better",
				"should i", "ways to", "recommend", "best way", "boost", "increase",
				"help me",
			},
			Summary: []string{
				"summary", "summarize", "status", "report", "overview", "progress",
				"my health",
			},
		},
		Confidence: Confidences{
			MentalHealth:  0.95,
			Medication:    0.95,
			SymptomPhrase: 0.90,
			SymptomWord:   0.85,
			Wellness:      0.90,
			Summary:       0.95,
		},
	}
}

func applyDefaults(cfg *IntentsConfig) {
	def := DefaultIntentsConfig()

	fillList(&cfg.Keywords.MentalHealth, def.Keywords.MentalHealth)
	fillList(&cfg.Keywords.CopingActions, def.Keywords.CopingActions)
	fillList(&cfg.Keywords.Medications, def.Keywords.Medications)
	fillList(&cfg.Keywords.QuestionPhrases, def.Keywords.QuestionPhrases)
	fillList(&cfg.Keywords.SymptomPhrases, def.Keywords.SymptomPhrases)
	fillList(&cfg.Keywords.SymptomWords, def.Keywords.SymptomWords)
	fillList(&cfg.Keywords.WellnessTopics, def.Keywords.WellnessTopics)
	fillList(&cfg.Keywords.AdviceWords, def.Keywords.AdviceWords)
	fillList(&cfg.Keywords.Summary, def.Keywords.Summary)
}

func fillList(dst *[]string, def []string) {
	if len(*dst) == 0 {
		*dst = append([]string(nil), def...)
	}
}

func (c *IntentsConfig) Validate() error {
	scores := map[string]float64{
		"mental_health":  c.Confidence.MentalHealth,
		"medication":     c.Confidence.Medication,
		"symptom_phrase": c.Confidence.SymptomPhrase,
		"symptom_word":   c.Confidence.SymptomWord,
		"wellness":       c.Confidence.Wellness,
		"summary":        c.Confidence.Summary,
	}
	for name, score := range scores {
		if score < 0 || score > 1 {
			return fmt.Errorf("confidence.%s must be within [0,1], got %v", name, score)
		}
	}
	return nil
}
