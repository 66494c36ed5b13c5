package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const (
	mongoLogPrefix = "mongo"
)

type mongoDB struct {
	client   *mongo.Client
	database string
	header   []string
}

// NewMongoStore - one document per row, ordered by insertion
func NewMongoStore(client *mongo.Client, database string, header []string) ResponseStore {
	return &mongoDB{
		client:   client,
		database: database,
		header:   append([]string{}, header...),
	}
}

func (m *mongoDB) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ResponseCollection)
}

// nextSequence increments the response counter on the server and returns the
// new value.
func (m *mongoDB) nextSequence(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter schema.SequenceDocument
	err := m.client.Database(m.database).Collection(schema.SequenceCollection).
		FindOneAndUpdate(ctx,
			bson.M{"_id": schema.ResponseCollection},
			bson.M{"$inc": bson.M{"seq": 1}},
			opts).
		Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (m *mongoDB) Append(ctx context.Context, row []string) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	seq, err := m.nextSequence(ctx)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("allocate response sequence with error: %s", err)
		return wrap(OpAppend, err)
	}

	doc := schema.ResponseDocument{
		Cells: append([]string{}, row...),
		Seq:   seq,
	}
	if _, err := m.collection().InsertOne(ctx, doc); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("insert response with error: %s", err)
		return wrap(OpAppend, err)
	}
	return nil
}

func (m *mongoDB) ReadAll(ctx context.Context) ([]schema.Record, error) {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := m.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query responses with error: %s", err)
		return nil, wrap(OpRead, err)
	}
	defer cur.Close(ctx)

	records := make([]schema.Record, 0)
	for cur.Next(ctx) {
		var doc schema.ResponseDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, wrap(OpRead, err)
		}
		records = append(records, schema.NewRecord(m.header, doc.Cells))
	}
	if err := cur.Err(); err != nil {
		return nil, wrap(OpRead, err)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("read %d responses", len(records))
	return records, nil
}

// Ping - ping mongo db
func (m *mongoDB) Ping(ctx context.Context) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	return wrap(OpPing, m.client.Ping(ctx, nil))
}

// Prepare creates the ordering index of the response collection.
func (m *mongoDB) Prepare(ctx context.Context, _ []string) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	return wrap(OpPrepare, schema.NewMongoDBIndexer(m.client, m.database).IndexAll(ctx))
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}
