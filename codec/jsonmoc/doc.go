// Package jsonmoc implements the `{"<depth>":[idx, "idx-idx", …], …}` MOC
// JSON format: one array per depth bucket, buckets in insertion order, the
// declared depth always present as a key even when its bucket is empty.
package jsonmoc
