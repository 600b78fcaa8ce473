package model

// symptomIndex maps the symptom vocabulary the predictor was trained on to
// its feature index. The news search endpoint uses the same vocabulary to
// whitelist query keywords.
var symptomIndex = map[string]int{
	"abdominal_pain":            0,
	"abnormal_menstruation":     1,
	"altered_sensorium":         2,
	"back_pain":                 3,
	"belly_pain":                4,
	"bladder_discomfort":        5,
	"blister":                   6,
	"breathlessness":            7,
	"brittle_nails":             8,
	"burning_micturition":       9,
	"chest_pain":                10,
	"continuous_feel_of_urine":  11,
	"cough":                     12,
	"dark_urine":                13,
	"dehydration":               14,
	"depression":                15,
	"diarrhoea":                 16,
	"dischromic_patches":        17,
	"enlarged_thyroid":          18,
	"family_history":            19,
	"fatigue":                   20,
	"foul_smell_ofurine":        21,
	"headache":                  22,
	"hip_joint_pain":            23,
	"increased_appetite":        24,
	"inflammatory_nails":        25,
	"internal_itching":          26,
	"irritability":              27,
	"itching":                   28,
	"joint_pain":                29,
	"knee_pain":                 30,
	"lack_of_concentration":     31,
	"loss_of_balance":           32,
	"loss_of_smell":             33,
	"mucoid_sputum":             34,
	"muscle_pain":               35,
	"nausea":                    36,
	"painful_walking":           37,
	"passage_of_gases":          38,
	"polyuria":                  39,
	"red_sore_around_nose":      40,
	"red_spots_over_body":       41,
	"rusty_sputum":              42,
	"silver_like_dusting":       43,
	"skin_peeling":              44,
	"skin_rash":                 45,
	"small_dents_in_nails":      46,
	"spinning_movements":        47,
	"spotting_urination":        48,
	"sunken_eyes":               49,
	"swelling_joints":           50,
	"swollen_extremeties":       51,
	"toxic_look_(typhos)":       52,
	"unsteadiness":              53,
	"vomiting":                  54,
	"watering_from_eyes":        55,
	"weakness_in_limbs":         56,
	"weakness_of_one_body_side": 57,
	"yellow_crust_ooze":         58,
	"yellowish_skin":            59,
}

// IsKnownSymptom reports whether the token is part of the predictor's
// symptom vocabulary.
func IsKnownSymptom(symptom string) bool {
	_, ok := symptomIndex[symptom]
	return ok
}
