// Package team registers the Swagger specification for the team service.
// Regenerate with: swag init -g internal/team/http/router.go -o api/team
package team

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Gridline Team",
            "url": "https://github.com/gridline/crewhub"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {"200": {"description": "status, uptime, version"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks"},
                    "503": {"description": "service not ready"}
                }
            }
        },
        "/v1/projects": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Create Project Endpoint",
                "responses": {
                    "201": {"description": "the created project"},
                    "400": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Get Project Endpoint",
                "responses": {
                    "200": {"description": "the project"},
                    "404": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/archive": {
            "post": {
                "tags": ["Projects"],
                "summary": "Archive Project Endpoint",
                "responses": {
                    "204": {"description": "project archived"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/unarchive": {
            "post": {
                "tags": ["Projects"],
                "summary": "Unarchive Project Endpoint",
                "responses": {
                    "204": {"description": "project unarchived"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/invitations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Invite Team Member Endpoint",
                "responses": {
                    "201": {"description": "invitation_id, invite_token, expires_at"},
                    "400": {"description": "error, error_description"},
                    "403": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            }
        },
        "/v1/invitations/accept": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Accept Invitation Endpoint",
                "responses": {
                    "200": {"description": "the resulting membership"},
                    "404": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"},
                    "410": {"description": "error, error_description"}
                }
            }
        },
        "/v1/invitations/decline": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Decline Invitation Endpoint",
                "responses": {
                    "204": {"description": "invitation declined"},
                    "404": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/team": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "List Team Endpoint",
                "responses": {
                    "200": {"description": "members"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/team/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "Get Membership Endpoint",
                "responses": {
                    "200": {"description": "the membership"},
                    "404": {"description": "error, error_description"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "Change Role Endpoint",
                "responses": {
                    "200": {"description": "the updated membership"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            },
            "delete": {
                "tags": ["Team"],
                "summary": "Remove Team Member Endpoint",
                "responses": {
                    "204": {"description": "member removed"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            }
        },
        "/v1/projects/{id}/crews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crews"],
                "summary": "List Crews Endpoint",
                "responses": {
                    "200": {"description": "crews"},
                    "403": {"description": "error, error_description"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crews"],
                "summary": "Create Crew Endpoint",
                "responses": {
                    "201": {"description": "the created crew"},
                    "403": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"}
                }
            }
        },
        "/v1/crews/{id}": {
            "delete": {
                "tags": ["Crews"],
                "summary": "Deactivate Crew Endpoint",
                "responses": {
                    "204": {"description": "crew deactivated"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"}
                }
            }
        },
        "/v1/crews/{id}/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crews"],
                "summary": "List Crew Members Endpoint",
                "responses": {
                    "200": {"description": "members"},
                    "403": {"description": "error, error_description"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crews"],
                "summary": "Add Crew Member Endpoint",
                "responses": {
                    "201": {"description": "the created crew membership"},
                    "403": {"description": "error, error_description"},
                    "409": {"description": "error, error_description"},
                    "422": {"description": "error, error_description"}
                }
            }
        },
        "/v1/crews/{id}/members/{userID}": {
            "delete": {
                "tags": ["Crews"],
                "summary": "Remove Crew Member Endpoint",
                "responses": {
                    "204": {"description": "crew member removed"},
                    "403": {"description": "error, error_description"},
                    "404": {"description": "error, error_description"}
                }
            }
        },
        "/v1/crews/{id}/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crews"],
                "summary": "List Crew Candidates Endpoint",
                "responses": {
                    "200": {"description": "candidates"},
                    "403": {"description": "error, error_description"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CrewHub Team Service API",
	Description:      "Project team and crew authorization engine: membership lifecycle, single-use invitation tokens, role-based permission checks, and crew composition.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
