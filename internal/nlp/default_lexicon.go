package nlp

// DefaultLexicon covers common symptoms, conditions and over-the-counter or
// frequently prescribed drugs.
func DefaultLexicon() *Lexicon {
	terms := map[string]string{}

	for _, s := range []string{
		"headache", "migraine", "fever", "cough", "nausea", "dizziness", "fatigue",
		"rash", "sore throat", "vomiting", "diarrhea", "constipation", "insomnia",
		"chills", "congestion", "runny nose", "shortness of breath", "heartburn",
		"back pain", "chest pain", "joint pain", "muscle ache", "stomach ache",
	} {
		terms[s] = "SYMPTOM"
	}

	for _, d := range []string{
		"diabetes", "hypertension", "asthma", "flu", "influenza", "common cold",
		"covid", "covid-19", "anemia", "arthritis", "malaria", "typhoid",
		"high blood pressure", "depression", "anxiety",
	} {
		terms[d] = "DISEASE"
	}

	for _, m := range []string{
		"ibuprofen", "paracetamol", "acetaminophen", "aspirin", "naproxen",
		"amoxicillin", "metformin", "insulin", "lisinopril", "atorvastatin",
		"omeprazole", "cetirizine", "loratadine", "warfarin", "prednisone",
	} {
		terms[m] = "PRODUCT"
	}

	return NewLexicon(terms)
}
