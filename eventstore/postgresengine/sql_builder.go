package postgresengine

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the dialect
	"github.com/doug-martin/goqu/v9/exp"
	jsoniter "github.com/json-iterator/go"

	"github.com/shelfwise/circulation/eventstore"
)

const (
	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	cteContext        = "context"
	cteVals           = "vals"
	dialectPostgres   = "postgres"
	aliasMaxSeq       = "max_seq"
	castText          = "?::text"
	castTimestamp     = "?::timestamp with time zone"
	castJsonb         = "?::jsonb"
	payloadContains   = `"payload" @> ?::jsonb`
)

type sqlQueryString = string

func (es *EventStore) buildSelectQuery(filter eventstore.Filter) (sqlQueryString, error) {
	whereClause, err := buildWhereClause(filter)
	if err != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, err)
	}

	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Where(whereClause).
		Order(goqu.I(colSequenceNumber).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) buildInsertQuery(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	whereClause, err := buildWhereClause(filter)
	if err != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, err)
	}

	builder := goqu.Dialect(dialectPostgres)

	cteStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq)).
		Where(whereClause)

	guard := goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))

	var insertStmt *goqu.InsertDataset

	if len(events) == 1 {
		event := events[0]
		insertStmt = builder.
			Insert(es.eventTableName).
			Cols(colEventType, colOccurredAt, colPayload, colMetadata).
			With(cteContext, cteStmt).
			FromQuery(
				builder.From(cteContext).
					Select(
						goqu.L(castText, event.EventType),
						goqu.L(castTimestamp, event.OccurredAt),
						goqu.L(castJsonb, string(event.PayloadJSON)),
						goqu.L(castJsonb, string(event.MetadataJSON)),
					).
					Where(guard),
			)
	} else {
		var valuesStmt *goqu.SelectDataset
		for _, event := range events {
			row := builder.Select(
				goqu.L(castText, event.EventType).As(colEventType),
				goqu.L(castTimestamp, event.OccurredAt).As(colOccurredAt),
				goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
				goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
			)

			if valuesStmt == nil {
				valuesStmt = row
				continue
			}

			valuesStmt = valuesStmt.UnionAll(row)
		}

		insertStmt = builder.
			Insert(es.eventTableName).
			Cols(colEventType, colOccurredAt, colPayload, colMetadata).
			With(cteContext, cteStmt).
			With(cteVals, valuesStmt).
			FromQuery(
				builder.From(cteContext, cteVals).
					Select(
						goqu.I(cteVals+"."+colEventType),
						goqu.I(cteVals+"."+colOccurredAt),
						goqu.I(cteVals+"."+colPayload),
						goqu.I(cteVals+"."+colMetadata),
					).
					Where(guard),
			)
	}

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// buildWhereClause turns the filter into: (item OR item...) AND occurred_at range.
// Inside an item, event types are always OR-ed and AND-ed with the predicates.
func buildWhereClause(filter eventstore.Filter) (exp.ExpressionList, error) {
	itemExpressions := make([]exp.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		eventTypeExpressions := make([]exp.Expression, 0, len(item.EventTypes()))
		for _, eventType := range item.EventTypes() {
			eventTypeExpressions = append(eventTypeExpressions, goqu.C(colEventType).Eq(eventType))
		}

		predicateExpressions := make([]exp.Expression, 0, len(item.Predicates()))
		for _, predicate := range item.Predicates() {
			containment, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(
				map[string]string{predicate.Key(): predicate.Val()},
			)
			if err != nil {
				return nil, err
			}

			predicateExpressions = append(predicateExpressions, goqu.L(payloadContains, string(containment)))
		}

		predicates := goqu.Or(predicateExpressions...)
		if item.AllPredicatesMustMatch() {
			predicates = goqu.And(predicateExpressions...)
		}

		itemExpressions = append(itemExpressions, goqu.And(goqu.Or(eventTypeExpressions...), predicates))
	}

	occurredAtExpressions := make([]exp.Expression, 0, 2)

	if !filter.OccurredFrom().IsZero() {
		occurredAtExpressions = append(occurredAtExpressions, goqu.C(colOccurredAt).Gte(filter.OccurredFrom()))
	}

	if !filter.OccurredUntil().IsZero() {
		occurredAtExpressions = append(occurredAtExpressions, goqu.C(colOccurredAt).Lte(filter.OccurredUntil()))
	}

	return goqu.And(goqu.Or(itemExpressions...), goqu.And(occurredAtExpressions...)), nil
}
