package search

// synonyms maps a clinical query term to body phrases that should count
// as weak evidence for it. A synonym hit adds a flat boost, well below
// any direct phrase match.
var synonyms = map[string][]string{
	"cardiac arrest": {"chest pain", "pulseless", "asystole", "rosc"},
	"chest pain":     {"angina", "acs"},
	"myocardial infarction": {"stemi", "heart attack"},
	"stroke":        {"cerebrovascular accident", "facial droop", "hemiparesis"},
	"seizure":       {"convulsion", "postictal", "status epilepticus"},
	"anaphylaxis":   {"allergic reaction", "angioedema", "urticaria"},
	"overdose":      {"poisoning", "ingestion", "toxidrome"},
	"hypoglycemia":  {"low blood sugar", "insulin shock"},
	"hemorrhage":    {"bleeding", "exsanguination"},
	"shortness of breath": {"dyspnea", "respiratory distress"},
	"airway":        {"intubation", "laryngoscopy"},
	"naloxone":      {"narcan"},
	"narcan":        {"naloxone"},
	"epinephrine":   {"adrenaline", "epi-pen"},
	"childbirth":    {"delivery", "labor", "obstetric"},
	"drowning":      {"submersion"},
	"burn":          {"thermal injury", "scald"},
}
