// utils/firebase.go
package utils

import (
	"context"
	"log"

	"civicbook/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirestoreClient *firestore.Client

// FirebaseInit initializes the Firebase App and the Firestore client that
// backs the appointment-times restriction table.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	var fbConfig *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FirestoreClient = client
}

// GetFirestoreClient returns the shared Firestore client.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient == nil {
		FirebaseInit()
	}
	return FirestoreClient
}
