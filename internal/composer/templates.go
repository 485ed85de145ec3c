package composer

import "github.com/povarna/generative-ai-agents/health-agent/internal/models"

const rephrasePrompt = "I'm here to help with your health questions. Could you please rephrase that?"

// template renders the top knowledge entry for one intent, or asks a
// clarifying question when nothing was retrieved.
type template struct {
	heading  string
	footer   string
	fallback string
}

var templates = map[models.Intent]template{
	models.IntentSymptomChecker: {
		heading:  "**Based on what you've described:**",
		footer:   "⚠️ **Important:** This is educational information only. Please consult a healthcare provider for proper diagnosis and treatment.",
		fallback: "I understand you're experiencing symptoms. While I can provide general information, it's important to consult with a healthcare provider for proper evaluation. Could you describe your symptoms in more detail?",
	},
	models.IntentMedicationExplainer: {
		heading:  "**Medication Information:**",
		footer:   "💊 **Remember:** Always take medications as prescribed by your healthcare provider. Never adjust dosages without consulting your doctor.",
		fallback: "I don't have specific information about that medication in my knowledge base. Please consult your pharmacist or healthcare provider for accurate medication information.",
	},
	models.IntentGeneralWellness: {
		heading:  "**Wellness Advice:**",
		footer:   "✨ Remember, small consistent changes lead to lasting improvements in health!",
		fallback: "I'd be happy to provide wellness guidance. Could you be more specific about what aspect of wellness you're interested in? (e.g., sleep, nutrition, exercise, stress management)",
	},
	models.IntentMentalHealth: {
		heading: "**Mental Health Support:**",
		footer: "🧠 **Support Resources:** If you're in crisis or need immediate help, please contact:\n" +
			"- National Suicide Prevention Lifeline: 988\n" +
			"- Crisis Text Line: Text HOME to 741741\n" +
			"- Your local emergency services: 911",
		fallback: "Mental health is incredibly important. While I can provide general guidance, please consider speaking with a mental health professional who can provide personalized support. How can I help you today?",
	},
	models.IntentHealthSummary: {
		heading:  "**Your Health Summary:**",
		footer:   "💡 **Tip:** Log your sleep, stress and daily steps regularly to get personalized nudges.",
		fallback: "I can help you review your health habits. Which area would you like a summary of: sleep, activity, stress or nutrition?",
	},
}
