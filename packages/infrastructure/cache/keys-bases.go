package cache

const EntityKeyPrefix string = "entity_"
const AnyEntityKeyPrefix string = "any_entity_"
const DeletedEntityKeyPrefix string = "sd_entity_"

const BusinessEntityKeyPrefix string = "bentity_"
const AnyBusinessEntityKeyPrefix string = "any_bentity_"
const DeletedBusinessEntityKeyPrefix string = "sd_bentity_"

const LocationKeyPrefix string = "location_"
const AnyLocationKeyPrefix string = "any_location_"
const DeletedLocationKeyPrefix string = "sd_location_"

const LocationTypeKeyPrefix string = "ltype_"

var EntityById = "entity_by_id"
var AnyEntityById = "any_entity_by_id"
var DeletedEntityById = "deleted_entity_by_id"

var BusinessEntityById = "bentity_by_id"
var AnyBusinessEntityById = "any_bentity_by_id"
var DeletedBusinessEntityById = "deleted_bentity_by_id"

var LocationById = "location_by_id"
var AnyLocationById = "any_location_by_id"
var DeletedLocationById = "deleted_location_by_id"

var LocationTypeById = "ltype_by_id"

var KeyBase = map[string]string {
    EntityById: EntityKeyPrefix + "id:",
    AnyEntityById: AnyEntityKeyPrefix + "id:",
    DeletedEntityById: DeletedEntityKeyPrefix + "id:",

    BusinessEntityById: BusinessEntityKeyPrefix + "id:",
    AnyBusinessEntityById: AnyBusinessEntityKeyPrefix + "id:",
    DeletedBusinessEntityById: DeletedBusinessEntityKeyPrefix + "id:",

    LocationById: LocationKeyPrefix + "id:",
    AnyLocationById: AnyLocationKeyPrefix + "id:",
    DeletedLocationById: DeletedLocationKeyPrefix + "id:",

    LocationTypeById: LocationTypeKeyPrefix + "id:",
}
