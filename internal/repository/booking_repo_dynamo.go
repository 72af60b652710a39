package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

type bookingItem struct {
	BookingID        string    `dynamodbav:"booking_id"`
	UserEmail        string    `dynamodbav:"user_email"`
	Name             string    `dynamodbav:"name"`
	Location         string    `dynamodbav:"location"`
	BookingDate      string    `dynamodbav:"booking_date"`
	EventType        string    `dynamodbav:"event_type"`
	Price            int       `dynamodbav:"price"`
	Status           string    `dynamodbav:"status"`
	BookingTime      time.Time `dynamodbav:"booking_time"`
	PhotographerName string    `dynamodbav:"photographer_name"`
}

// DynamoBookingRepository stores bookings keyed by booking_id and reads a
// user's history through a global secondary index on (user_email, booking_date).
type DynamoBookingRepository struct {
	client DynamoAPI
	table  string
	index  string
}

func NewDynamoBookingRepository(client DynamoAPI, table, userIndex string) BookingRepository {
	return &DynamoBookingRepository{client: client, table: table, index: userIndex}
}

func (r *DynamoBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	av, err := attributevalue.MarshalMap(bookingItem{
		BookingID:        booking.ID,
		UserEmail:        booking.UserEmail,
		Name:             booking.Name,
		Location:         booking.Location,
		BookingDate:      booking.BookingDate,
		EventType:        string(booking.EventType),
		Price:            booking.Price,
		Status:           string(booking.Status),
		BookingTime:      booking.BookingTime,
		PhotographerName: booking.PhotographerName,
	})
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(booking_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *DynamoBookingRepository) ListByUser(ctx context.Context, email string) ([]domain.Booking, error) {
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(r.index),
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		ScanIndexForward: aws.Bool(false),
	})

	bookings := make([]domain.Booking, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			bookings = append(bookings, domain.Booking{
				ID:               it.BookingID,
				UserEmail:        it.UserEmail,
				Name:             it.Name,
				Location:         it.Location,
				BookingDate:      it.BookingDate,
				EventType:        domain.EventType(it.EventType),
				Price:            it.Price,
				Status:           domain.BookingStatus(it.Status),
				BookingTime:      it.BookingTime,
				PhotographerName: it.PhotographerName,
			})
		}
	}
	return bookings, nil
}

var _ BookingRepository = (*DynamoBookingRepository)(nil)
