package db

import (
	"github.com/jsphweid/midiwire/constants"
	"github.com/jsphweid/midiwire/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func GetManufacturerMetadatas(ids []string) map[string]model.ManufacturerMetadata {
	if len(ids) > 10 {
		panic("Not supposed to pass in more than 10 ids!")
	}

	res := make(map[string]model.ManufacturerMetadata)

	if len(ids) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"midiwire-manufacturers": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["midiwire-manufacturers"] {
		var m model.ManufacturerMetadata
		if v["Name"] != nil && v["Name"].S != nil {
			m.Name = *v["Name"].S
		}
		if v["Group"] != nil && v["Group"].S != nil {
			m.Group = *v["Group"].S
		}
		res[*v["PK"].S] = m
	}

	return res
}
