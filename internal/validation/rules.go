package validation

var Signup = &RuleSet{
	Name: "signup",
	Messages: map[string]string{
		"email.required":     "Email is required",
		"email.email":        "Please provide a valid email address",
		"email.max":          "Email cannot exceed 191 characters",
		"password.required":  "Password is required",
		"password.min":       "Password must be at least 8 characters long",
		"password.type":      "Password must be a string",
		"firstName.required": "First name is required",
		"firstName.max":      "First name cannot exceed 100 characters",
		"lastName.required":  "Last name is required",
		"lastName.max":       "Last name cannot exceed 100 characters",
		"role.required":      "Role is required",
		"role.oneof":         "Role must be one of: ADMIN, LAWYER, PARALEGAL, ASSISTANT",
		"role.*":             "Role must be one of: ADMIN, LAWYER, PARALEGAL, ASSISTANT",
	},
}

var Login = &RuleSet{
	Name: "login",
	Messages: map[string]string{
		"email.required":    "Email is required",
		"email.email":       "Please provide a valid email address",
		"password.required": "Password is required",
		"password.type":     "Password must be a string",
	},
}

var CreateCase = &RuleSet{
	Name: "createCase",
	Messages: map[string]string{
		"caseNumber.required": "Case number is required",
		"caseNumber.max":      "Case number cannot exceed 100 characters",
		"title.required":      "Title is required",
		"title.min":           "Title must be at least 3 characters long",
		"title.max":           "Title cannot exceed 255 characters",
		"description.max":     "Description cannot exceed 2000 characters",
		"status.required":     "Status is required",
		"status.oneof":        "Status must be one of: OPEN, CLOSED, PENDING, ARCHIVED",
		"status.*":            "Status must be one of: OPEN, CLOSED, PENDING, ARCHIVED",
		"priority.*":          "Priority must be one of: LOW, MEDIUM, HIGH, URGENT",
		"practiceArea.max":    "Practice area cannot exceed 100 characters",
		"clientName.min":      "Client name is not allowed to be empty",
		"clientName.max":      "Client name cannot exceed 255 characters",
		"clientEmail.*":       "Client email must be a valid email address",
		"clientPhone.min":     "Client phone is not allowed to be empty",
		"clientPhone.max":     "Client phone cannot exceed 50 characters",
		"opposingParty.min":   "Opposing party is not allowed to be empty",
		"opposingParty.max":   "Opposing party cannot exceed 255 characters",
		"courtName.min":       "Court name is not allowed to be empty",
		"courtName.max":       "Court name cannot exceed 255 characters",
		"judgeAssigned.min":   "Judge name is not allowed to be empty",
		"judgeAssigned.max":   "Judge name cannot exceed 255 characters",
		"filingDate.*":        "Filing date must be in ISO format (YYYY-MM-DD)",
		"hearingDate.*":       "Hearing date must be in ISO format (YYYY-MM-DD)",
		"billingType.*":       "Billing type must be one of: HOURLY, FLAT_FEE, CONTINGENCY, PRO_BONO",
		"billingRate.gte":     "Billing rate cannot be negative",
		"billingRate.type":    "Billing rate must be a number",
		"estimatedValue.gte":  "Estimated value cannot be negative",
		"estimatedValue.type": "Estimated value must be a number",
		"customFields.type":   "Custom fields must be a valid JSON object",
	},
}
