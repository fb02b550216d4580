// Package firestore implements the domain repositories on top of Google
// Cloud Firestore collections.
package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	servicesCollection = "services"
	itemsCollection    = "items"
	ordersCollection   = "orders"
	usersCollection    = "users"
	countersCollection = "counters"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
