package query

// abbreviations maps common EMS shorthand to its full clinical term.
// Expansions must not themselves contain table keys, otherwise
// normalization would not reach a fixpoint.
var abbreviations = map[string]string{
	"mi":    "myocardial infarction",
	"cpr":   "cardiopulmonary resuscitation",
	"sob":   "shortness of breath",
	"loc":   "loss of consciousness",
	"cva":   "cerebrovascular accident",
	"afib":  "atrial fibrillation",
	"vfib":  "ventricular fibrillation",
	"vf":    "ventricular fibrillation",
	"vtach": "ventricular tachycardia",
	"svt":   "supraventricular tachycardia",
	"bvm":   "bag valve mask",
	"rsi":   "rapid sequence intubation",
	"iv":    "intravenous",
	"io":    "intraosseous",
	"epi":   "epinephrine",
	"ntg":   "nitroglycerin",
	"asa":   "aspirin",
	"copd":  "chronic obstructive pulmonary disease",
	"chf":   "congestive heart failure",
	"dka":   "diabetic ketoacidosis",
	"tbi":   "traumatic brain injury",
	"gsw":   "gunshot wound",
	"mvc":   "motor vehicle collision",
	"peds":  "pediatric",
	"bgl":   "blood glucose level",
}

// typoCorrections maps frequently observed misspellings to the intended
// word. Corrections must not map onto abbreviation keys.
var typoCorrections = map[string]string{
	"cardaic":       "cardiac",
	"arrythmia":     "arrhythmia",
	"arrhytmia":     "arrhythmia",
	"seisure":       "seizure",
	"siezure":       "seizure",
	"epinepherine":  "epinephrine",
	"epinephrin":    "epinephrine",
	"asprin":        "aspirin",
	"diabetis":      "diabetes",
	"anaphalaxis":   "anaphylaxis",
	"anaphylaxsis":  "anaphylaxis",
	"tachicardia":   "tachycardia",
	"defibrilation": "defibrillation",
	"hemorage":      "hemorrhage",
	"hemmorhage":    "hemorrhage",
	"nalaxone":      "naloxone",
	"narcon":        "narcan",
}

// domainTerms are the clinical terms the scorer counts occurrences of.
// Multi-word phrases are listed before the single words they contain so
// extraction prefers the longer match.
var domainTerms = []string{
	"cardiac arrest",
	"chest pain",
	"myocardial infarction",
	"ventricular fibrillation",
	"ventricular tachycardia",
	"supraventricular tachycardia",
	"atrial fibrillation",
	"shortness of breath",
	"loss of consciousness",
	"respiratory distress",
	"allergic reaction",
	"cerebrovascular accident",
	"traumatic brain injury",
	"spinal injury",
	"blood glucose",
	"stroke",
	"seizure",
	"anaphylaxis",
	"overdose",
	"asthma",
	"hypoglycemia",
	"hyperglycemia",
	"hypothermia",
	"hyperthermia",
	"sepsis",
	"shock",
	"trauma",
	"burn",
	"airway",
	"intubation",
	"defibrillation",
	"hemorrhage",
	"childbirth",
	"drowning",
	"epinephrine",
	"nitroglycerin",
	"aspirin",
	"naloxone",
	"narcan",
	"amiodarone",
	"adenosine",
	"fentanyl",
	"morphine",
	"midazolam",
	"ketamine",
	"albuterol",
	"glucagon",
	"dextrose",
	"atropine",
}

// dosingMarkers signal a dosing lookup when present in a query.
var dosingMarkers = []string{
	"dose", "dosage", "dosing", "how much", "mg", "mcg", "ml", "units",
	"concentration", "max dose",
}

// contraindicationMarkers signal a contraindication check.
var contraindicationMarkers = []string{
	"contraindication", "contraindicated", "contraindications",
	"when not to", "should not", "avoid", "interaction", "interactions",
}

// procedureMarkers signal a step-by-step procedure question.
var procedureMarkers = []string{
	"how to", "steps", "procedure", "technique", "perform", "landmarks",
}
