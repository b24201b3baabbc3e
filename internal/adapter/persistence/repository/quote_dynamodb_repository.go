package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/usecase/interfaces"
)

const defaultQuotesTableName = "quotes"

type quoteModuleItem struct {
	ModuleID         string `dynamodbav:"module_id"`
	IsActive         bool   `dynamodbav:"is_active"`
	EmployeeNumber   int    `dynamodbav:"employee_number"`
	MonthlyPrice     string `dynamodbav:"monthly_price"`
	AnnualPrice      string `dynamodbav:"annual_price"`
	Stamp            int    `dynamodbav:"stamp"`
	PricingAvailable bool   `dynamodbav:"pricing_available"`
}

type quoteProductItem struct {
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
	Total     string `dynamodbav:"total"`
}

type quoteTotalsItem struct {
	ModuleSupTotalMonthly   string `dynamodbav:"module_sup_total_monthly"`
	ModuleSupTotalAnual     string `dynamodbav:"module_sup_total_anual"`
	AmountExtraUsersMonthly string `dynamodbav:"amount_extra_users_monthly"`
	AmountStampMonthly      string `dynamodbav:"amount_stamp_monthly"`
	AmountDiscountMonthly   string `dynamodbav:"amount_discount_monthly"`
	SubTotalMonthly         string `dynamodbav:"sub_total_monthly"`
	IvaMonthly              string `dynamodbav:"iva_monthly"`
	TotalMonthly            string `dynamodbav:"total_monthly"`
	AmountDiscountAnual     string `dynamodbav:"amount_discount_anual"`
	SubTotalAnual           string `dynamodbav:"sub_total_anual"`
	IvaAnual                string `dynamodbav:"iva_anual"`
	TotalAnual              string `dynamodbav:"total_anual"`
	SubTotalProducts        string `dynamodbav:"sub_total_products"`
	IvaProducts             string `dynamodbav:"iva_products"`
	TotalProducts           string `dynamodbav:"total_products"`
}

type quoteItem struct {
	ID                 string             `dynamodbav:"id"`
	Folio              string             `dynamodbav:"folio"`
	CompanyName        string             `dynamodbav:"company_name"`
	ClientName         string             `dynamodbav:"client_name,omitempty"`
	ClientEmail        string             `dynamodbav:"client_email,omitempty"`
	EmployeeID         string             `dynamodbav:"employee_id,omitempty"`
	SellerID           string             `dynamodbav:"seller_id,omitempty"`
	SellerName         string             `dynamodbav:"seller_name,omitempty"`
	Status             string             `dynamodbav:"status"`
	MonthlyDiscount    string             `dynamodbav:"monthly_discount"`
	AnualDiscount      string             `dynamodbav:"anual_discount"`
	Months             int                `dynamodbav:"months"`
	NumberOfExtraUsers int                `dynamodbav:"number_of_extra_users"`
	RequiresStamps     bool               `dynamodbav:"requires_stamps"`
	NumberOfExtraRings int                `dynamodbav:"number_of_extra_rings"`
	Modules            []quoteModuleItem  `dynamodbav:"modules"`
	Products           []quoteProductItem `dynamodbav:"products"`
	Totals             quoteTotalsItem    `dynamodbav:"totals"`
	CreatedAt          string             `dynamodbav:"created_at"`
	UpdatedAt          string             `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Module and product lines are stored by id only; names and catalog prices
// are resolved from the local catalog when the quote is loaded.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return r.put(ctx, q, "attribute_not_exists(#id)")
}

// Update replaces the stored record. A zero Quote is returned when id is unknown.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	out, err := r.put(ctx, q, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return out, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := formatTime(r.now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) put(ctx context.Context, q entities.Quote, condition string) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	modules := make([]quoteModuleItem, 0, len(q.ModuleDetails))
	for _, m := range q.ModuleDetails {
		modules = append(modules, quoteModuleItem{
			ModuleID:         m.ModuleID,
			IsActive:         m.IsActive,
			EmployeeNumber:   m.EmployeeNumber,
			MonthlyPrice:     floatToString(m.MonthlyPrice),
			AnnualPrice:      floatToString(m.AnnualPrice),
			Stamp:            m.Stamp,
			PricingAvailable: m.PricingAvailable,
		})
	}
	products := make([]quoteProductItem, 0, len(q.ProductDetails))
	for _, p := range q.ProductDetails {
		products = append(products, quoteProductItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Price:     floatToString(p.Price),
			Total:     floatToString(p.Total),
		})
	}
	return quoteItem{
		ID:                 q.ID,
		Folio:              q.Folio,
		CompanyName:        q.CompanyName,
		ClientName:         q.ClientName,
		ClientEmail:        q.ClientEmail,
		EmployeeID:         q.EmployeeID,
		SellerID:           q.SellerID,
		SellerName:         q.SellerName,
		Status:             string(q.Status),
		MonthlyDiscount:    floatToString(q.MonthlyDiscount),
		AnualDiscount:      floatToString(q.AnualDiscount),
		Months:             q.Months,
		NumberOfExtraUsers: q.NumberOfExtraUsers,
		RequiresStamps:     q.RequiresStamps,
		NumberOfExtraRings: q.NumberOfExtraRings,
		Modules:            modules,
		Products:           products,
		Totals: quoteTotalsItem{
			ModuleSupTotalMonthly:   floatToString(q.ModuleSupTotalMonthly),
			ModuleSupTotalAnual:     floatToString(q.ModuleSupTotalAnual),
			AmountExtraUsersMonthly: floatToString(q.AmountExtraUsersMonthly),
			AmountStampMonthly:      floatToString(q.AmountStampMonthly),
			AmountDiscountMonthly:   floatToString(q.AmountDiscountMonthly),
			SubTotalMonthly:         floatToString(q.SubTotalMonthly),
			IvaMonthly:              floatToString(q.IvaMonthly),
			TotalMonthly:            floatToString(q.TotalMonthly),
			AmountDiscountAnual:     floatToString(q.AmountDiscountAnual),
			SubTotalAnual:           floatToString(q.SubTotalAnual),
			IvaAnual:                floatToString(q.IvaAnual),
			TotalAnual:              floatToString(q.TotalAnual),
			SubTotalProducts:        floatToString(q.SubTotalProducts),
			IvaProducts:             floatToString(q.IvaProducts),
			TotalProducts:           floatToString(q.TotalProducts),
		},
		CreatedAt: formatTime(q.CreatedAt),
		UpdatedAt: formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:                 it.ID,
		Folio:              it.Folio,
		CompanyName:        it.CompanyName,
		ClientName:         it.ClientName,
		ClientEmail:        it.ClientEmail,
		EmployeeID:         it.EmployeeID,
		SellerID:           it.SellerID,
		SellerName:         it.SellerName,
		Status:             entities.QuoteStatus(it.Status),
		MonthlyDiscount:    stringToFloat(it.MonthlyDiscount),
		AnualDiscount:      stringToFloat(it.AnualDiscount),
		Months:             it.Months,
		NumberOfExtraUsers: it.NumberOfExtraUsers,
		RequiresStamps:     it.RequiresStamps,
		NumberOfExtraRings: it.NumberOfExtraRings,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	for _, m := range it.Modules {
		q.ModuleDetails = append(q.ModuleDetails, entities.ModuleDetail{
			ModuleID:         m.ModuleID,
			IsActive:         m.IsActive,
			EmployeeNumber:   m.EmployeeNumber,
			MonthlyPrice:     stringToFloat(m.MonthlyPrice),
			AnnualPrice:      stringToFloat(m.AnnualPrice),
			Stamp:            m.Stamp,
			PricingAvailable: m.PricingAvailable,
		})
	}
	for _, p := range it.Products {
		q.ProductDetails = append(q.ProductDetails, entities.ProductDetail{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Price:     stringToFloat(p.Price),
			Total:     stringToFloat(p.Total),
		})
	}
	t := it.Totals
	q.QuoteTotals = entities.QuoteTotals{
		ModuleSupTotalMonthly:   stringToFloat(t.ModuleSupTotalMonthly),
		ModuleSupTotalAnual:     stringToFloat(t.ModuleSupTotalAnual),
		AmountExtraUsersMonthly: stringToFloat(t.AmountExtraUsersMonthly),
		AmountStampMonthly:      stringToFloat(t.AmountStampMonthly),
		AmountDiscountMonthly:   stringToFloat(t.AmountDiscountMonthly),
		SubTotalMonthly:         stringToFloat(t.SubTotalMonthly),
		IvaMonthly:              stringToFloat(t.IvaMonthly),
		TotalMonthly:            stringToFloat(t.TotalMonthly),
		AmountDiscountAnual:     stringToFloat(t.AmountDiscountAnual),
		SubTotalAnual:           stringToFloat(t.SubTotalAnual),
		IvaAnual:                stringToFloat(t.IvaAnual),
		TotalAnual:              stringToFloat(t.TotalAnual),
	}
	q.ProductTotals = entities.ProductTotals{
		SubTotalProducts: stringToFloat(t.SubTotalProducts),
		IvaProducts:      stringToFloat(t.IvaProducts),
		TotalProducts:    stringToFloat(t.TotalProducts),
	}
	return q
}
