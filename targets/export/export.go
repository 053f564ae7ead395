// Package export writes generated schema documents to artifact sinks: JSONL
// files for batch outputs and storage buckets for published documents.
package export

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/checkmarble/typeschema"
	"github.com/cockroachdb/errors"
	"github.com/simonfrey/jsonl"
)

// Record is one line of a batch artifact file.
type Record struct {
	Constant string                 `json:"constant"`
	Schema   *typeschema.SchemaNode `json:"schema,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// WriteJSONL writes batch generation results as a JSONL artifact, one record
// per declaration in batch order. Failed declarations carry their error
// message instead of a schema.
func WriteJSONL(w io.Writer, results []typeschema.BatchResult) error {
	writer := jsonl.NewWriter(w)

	for _, result := range results {
		record := Record{
			Constant: result.Constant,
			Schema:   result.Schema,
		}

		if result.Error != nil {
			record.Error = result.Error.Error()
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "could not write schema record for '%s'", result.Declaration.Name)
		}
	}

	return nil
}

// Publish uploads one schema document to a storage bucket object.
func Publish(ctx context.Context, client *storage.Client, bucket, object string, schema *typeschema.SchemaNode) error {
	buf, err := schema.Document()
	if err != nil {
		return err
	}

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(buf); err != nil {
		return errors.Wrapf(err, "could not upload schema document to 'gs://%s/%s'", bucket, object)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "could not upload schema document to 'gs://%s/%s'", bucket, object)
	}

	return nil
}
