package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/usecase/interfaces"
)

const defaultPriceSchemesTableName = "price_schemes"

// Row kinds of the price scheme table.
const (
	priceKindModule     = "module"
	priceKindExtraUser  = "extra_user"
	priceKindExtraStamp = "extra_stamp"
)

type priceSchemeItem struct {
	ID             string `dynamodbav:"id"`
	Kind           string `dynamodbav:"kind"`
	ModuleID       string `dynamodbav:"module_id,omitempty"`
	MinEmployees   int    `dynamodbav:"min_employees"`
	MaxEmployees   int    `dynamodbav:"max_employees"`
	MonthlyPrice   string `dynamodbav:"monthly_price"`
	AnnualPrice    string `dynamodbav:"annual_price,omitempty"`
	StampAllotment int    `dynamodbav:"stamp_allotment"`
}

// PriceSchemeDynamoRepository reads the price scheme catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string), e.g. NOMINA#1 or EXTRA_USER
//
// Each module tier is one "module" row. The extra user and extra stamp monthly
// rates are single rows of kind "extra_user" and "extra_stamp".
type PriceSchemeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPriceSchemeRepository = (*PriceSchemeDynamoRepository)(nil)

func NewPriceSchemeDynamoRepository(ddb DynamoAPI, tableName string) *PriceSchemeDynamoRepository {
	if tableName == "" {
		tableName = defaultPriceSchemesTableName
	}
	return &PriceSchemeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceSchemeDynamoRepository) Load(ctx context.Context) (entities.PriceScheme, error) {
	var scheme entities.PriceScheme
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return entities.PriceScheme{}, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var items []priceSchemeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return entities.PriceScheme{}, err
		}
		for _, it := range items {
			switch it.Kind {
			case priceKindModule:
				scheme.Entries = append(scheme.Entries, entities.PriceSchemeEntry{
					ModuleID:         it.ModuleID,
					MinEmployees:     it.MinEmployees,
					MaxEmployees:     it.MaxEmployees,
					MonthlyUnitPrice: stringToFloat(it.MonthlyPrice),
					AnnualUnitPrice:  stringToFloat(it.AnnualPrice),
					StampAllotment:   it.StampAllotment,
				})
			case priceKindExtraUser:
				scheme.Rates.ExtraUserMonthly = stringToFloat(it.MonthlyPrice)
			case priceKindExtraStamp:
				scheme.Rates.ExtraStampMonthly = stringToFloat(it.MonthlyPrice)
			}
		}
	}
	return scheme, nil
}

// Save writes every tier and both extra rates. Existing rows with the same id
// are overwritten; it is used to seed a local table.
func (r *PriceSchemeDynamoRepository) Save(ctx context.Context, s entities.PriceScheme) error {
	items := make([]priceSchemeItem, 0, len(s.Entries)+2)
	for _, e := range s.Entries {
		items = append(items, priceSchemeItem{
			ID:             fmt.Sprintf("%s#%d", e.ModuleID, e.MinEmployees),
			Kind:           priceKindModule,
			ModuleID:       e.ModuleID,
			MinEmployees:   e.MinEmployees,
			MaxEmployees:   e.MaxEmployees,
			MonthlyPrice:   floatToString(e.MonthlyUnitPrice),
			AnnualPrice:    floatToString(e.AnnualUnitPrice),
			StampAllotment: e.StampAllotment,
		})
	}
	items = append(items,
		priceSchemeItem{ID: "EXTRA_USER", Kind: priceKindExtraUser, MonthlyPrice: floatToString(s.Rates.ExtraUserMonthly)},
		priceSchemeItem{ID: "EXTRA_STAMP", Kind: priceKindExtraStamp, MonthlyPrice: floatToString(s.Rates.ExtraStampMonthly)},
	)

	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("put %s: %w", it.ID, err)
		}
	}
	return nil
}
