// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"fmt"
	"os"
	"os/user"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

// NewSession creates an AWS session using the shared credentials file's profile if it
// exists, or the EC2 instance role otherwise.
func NewSession(region, profile string) (*session.Session, error) {
	var creds *credentials.Credentials

	usr, err := user.Current()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/.aws/credentials", usr.HomeDir)
	if _, statErr := os.Stat(path); statErr == nil {
		creds = credentials.NewSharedCredentials(path, profile)
	} else {
		metadata := ec2metadata.New(session.Must(session.NewSession(aws.NewConfig())))
		creds = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{Client: metadata})
	}

	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
	})
}
