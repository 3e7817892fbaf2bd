package config

// Firestore collection names used by the election office's Firebase project.
const (
	FirestoreRestrictionsCollection = "appointmenttimeselect"
)
