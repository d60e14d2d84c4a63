package mongox

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIDFilter_PlainToken(t *testing.T) {
	f := IDFilter("not-an-object-id")
	require.Equal(t, bson.M{"id": "not-an-object-id"}, f)
}

func TestIDFilter_ObjectIDFallback(t *testing.T) {
	f := IDFilter("507f1f77bcf86cd799439011")
	_, hasOr := f["$or"]
	require.True(t, hasOr, "hex token should add the native-id fallback")
}
